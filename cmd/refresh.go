package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vbauerster/mpb/v4"
	"github.com/vbauerster/mpb/v4/decor"

	"github.com/vsmodtools/vsmod/fileio"
	"github.com/vsmodtools/vsmod/internal/shared"
)

// refreshCmd represents the refresh command
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rescan the mods directory and report what was found",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		scanner := fileio.NewScanner(shared.DataPath())

		var progress *mpb.Progress
		var bar *mpb.Bar
		report := func(done, total int) {
			if viper.GetBool("non-interactive") {
				return
			}
			if bar == nil {
				progress = mpb.New(mpb.WithWidth(64))
				bar = progress.AddBar(int64(total),
					mpb.PrependDecorators(
						decor.Name("scanning "),
						decor.CountersNoUnit("%d / %d"),
					),
					mpb.AppendDecorators(decor.Percentage()),
				)
			}
			bar.Increment()
		}

		skipped, err := scanner.Refresh(report)
		if err != nil {
			shared.Exitln(err)
		}
		if progress != nil {
			progress.Wait()
		}

		reportSkipped(skipped)
		fmt.Printf("Found %d mods in %s", len(scanner.Mods()), scanner.ModsDir)
		if len(skipped) > 0 {
			fmt.Printf(" (%d archives skipped)", len(skipped))
		}
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}
