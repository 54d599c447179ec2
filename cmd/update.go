package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vsmodtools/vsmod/internal/cmdshared"
	"github.com/vsmodtools/vsmod/internal/shared"
)

// updateCmd represents the update command. Checking the mod site for newer
// versions and replacing archives are contract-only stubs; both paths fail
// with a not-implemented error once the target mod is resolved.
var updateCmd = &cobra.Command{
	Use:     "update <name>",
	Short:   "Update a mod to a given version (not implemented)",
	Aliases: []string{"upgrade"},
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scanner := loadMods()

		query := strings.Join(args, " ")
		matches := scanner.Get(query)
		if len(matches) == 0 {
			shared.Exitf("No mod named %q is installed\n", query)
		}

		mod, cancelled := cmdshared.ChooseMod(query, matches)
		if cancelled {
			return
		}

		if viper.GetBool("update.check") {
			versions, err := mod.CheckUpdate()
			if err != nil {
				shared.Exitln(err)
			}
			fmt.Println(strings.Join(versions, "\n"))
			return
		}

		if err := mod.UpdateTo(viper.GetString("update.version")); err != nil {
			shared.Exitln(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolP("check", "c", false, "Only check for available versions")
	_ = viper.BindPFlag("update.check", updateCmd.Flags().Lookup("check"))
	updateCmd.Flags().String("version", "latest", "Version to update to")
	_ = viper.BindPFlag("update.version", updateCmd.Flags().Lookup("version"))
}
