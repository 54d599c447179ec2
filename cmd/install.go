package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vsmodtools/vsmod/internal/shared"
)

// installCmd represents the install command. Installing from the mod site is
// a contract-only stub; there is no agreed wire format for fetching a mod by
// id yet, so the command always fails with a not-implemented error.
var installCmd = &cobra.Command{
	Use:     "install <modid>",
	Short:   "Install a mod by mod id (not implemented)",
	Aliases: []string{"add", "get"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scanner := loadMods()

		if err := scanner.Install(args[0]); err != nil {
			shared.Exitln(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
