package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vsmodtools/vsmod/internal/cmdshared"
	"github.com/vsmodtools/vsmod/internal/shared"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:     "search <term>",
	Short:   "Fuzzy-search installed mods by name and show the chosen one",
	Aliases: []string{"find"},
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scanner := loadMods()

		mods := scanner.Mods()
		if len(mods) == 0 {
			shared.Exitln("No mods installed!")
		}

		term := strings.Join(args, " ")
		mod, cancelled := cmdshared.ChooseMod(term, mods)
		if cancelled {
			return
		}
		if mod == nil {
			shared.Exitf("Nothing matched %q\n", term)
		}

		fmt.Println(mod.Summary())
		fmt.Println()
		mod.WriteAll(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
