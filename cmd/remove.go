package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vsmodtools/vsmod/internal/shared"
)

// removeCmd represents the remove command. Deleting archives is a
// contract-only stub and always fails with a not-implemented error.
var removeCmd = &cobra.Command{
	Use:     "remove <modid>",
	Short:   "Remove a mod by name or mod id (not implemented)",
	Aliases: []string{"delete", "uninstall", "rm"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scanner := loadMods()

		if err := scanner.RemoveMod(args[0]); err != nil {
			shared.Exitln(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
