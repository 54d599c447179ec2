package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vsmodtools/vsmod/core"
	"github.com/vsmodtools/vsmod/internal/cmdshared"
	"github.com/vsmodtools/vsmod/internal/shared"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:     "info <name>",
	Short:   "Show every metadata field of one installed mod",
	Aliases: []string{"show"},
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scanner := loadMods()

		query := strings.Join(args, " ")
		matches := scanner.Get(query)
		if len(matches) == 0 {
			shared.Exitf("No mod named %q is installed\n", query)
		}

		// several archives can carry the same mod; show the newest first
		core.SortModsByVersion(matches)

		mod, cancelled := cmdshared.ChooseMod(query, matches)
		if cancelled {
			return
		}
		mod.WriteAll(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
