package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [name]",
	Short: "List installed mods, or every metadata field of the mods matching a name or mod id",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		scanner := loadMods()

		if len(args) > 0 {
			query := strings.Join(args, " ")
			for _, mod := range scanner.Get(query) {
				mod.WriteAll(os.Stdout)
			}
			return
		}

		for _, mod := range scanner.Mods() {
			fmt.Println(mod.Summary())
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
