package cmd

import (
	"strings"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"

	"github.com/vsmodtools/vsmod/internal/cmdshared"
	"github.com/vsmodtools/vsmod/internal/shared"
)

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:   "open [name]",
	Short: "Open the mods directory, or a mod's website, in the default application",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			if err := open.Start(shared.ModsPath()); err != nil {
				shared.Exitln(err)
			}
			return
		}

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

		website := mod.Info.Field("website")
		if website == "" {
			shared.Exitf("%s declares no website in its metadata\n", mod.DisplayName())
		}
		if err := open.Start(website); err != nil {
			shared.Exitln(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
