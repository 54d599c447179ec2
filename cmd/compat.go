package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vsmodtools/vsmod/core"
	"github.com/vsmodtools/vsmod/internal/shared"
)

// compatCmd represents the compat command
var compatCmd = &cobra.Command{
	Use:   "compat <game version>",
	Short: "Check which installed mods declare compatibility with a game version",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		gameVersion := args[0]
		scanner := loadMods()

		mods := scanner.Mods()
		core.SortModsByVersion(mods)

		incompatible := 0
		for _, mod := range mods {
			details, err := mod.Info.Details()
			if err != nil {
				fmt.Printf("?  %s: unreadable metadata fields (%v)\n", mod.DisplayName(), err)
				continue
			}

			requirement, declared := details.Dependencies["game"]
			switch {
			case !declared:
				fmt.Printf("?  %s: no game dependency declared\n", mod.DisplayName())
			case core.GameVersionSatisfies(requirement, gameVersion):
				fmt.Printf("ok %s [%s]\n", mod.DisplayName(), requirement)
			default:
				incompatible++
				fmt.Printf("!! %s requires game %s\n", mod.DisplayName(), requirement)
			}
		}

		if incompatible > 0 {
			shared.Exitf("%d mods are incompatible with game %s\n", incompatible, gameVersion)
		}
	},
}

func init() {
	rootCmd.AddCommand(compatCmd)
}
