package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vsmodtools/vsmod/fileio"
	"github.com/vsmodtools/vsmod/internal/cmdshared"
	"github.com/vsmodtools/vsmod/internal/shared"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a TOML manifest of the installed mods",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		scanner := loadMods()

		fs := afero.NewOsFs()
		output := viper.GetString("export.output")
		write, err := confirmOverwrite(fs, output)
		if err != nil {
			shared.Exitf("Error checking %s: %v\n", output, err)
		}
		if !write {
			fmt.Println("Cancelled!")
			return
		}

		err = fileio.WriteModList(fs, output, scanner.Mods())
		if err != nil {
			shared.Exitf("Error writing mod list: %v\n", err)
		}

		fmt.Printf("Exported %d mods to %s\n", len(scanner.Mods()), output)
	},
}

// confirmOverwrite reports whether writing to output may proceed, asking the
// user first when the file already exists.
func confirmOverwrite(fs afero.Fs, output string) (bool, error) {
	exists, err := afero.Exists(fs, output)
	if err != nil {
		return false, err
	}
	if !exists {
		return true, nil
	}
	return cmdshared.PromptYesNo(fmt.Sprintf("%s already exists, overwrite? [Y/n]: ", output)), nil
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", fileio.ModListFileName, "File to write the manifest to")
	_ = viper.BindPFlag("export.output", exportCmd.Flags().Lookup("output"))
}
