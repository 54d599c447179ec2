package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/vsmodtools/vsmod/core"
	"github.com/vsmodtools/vsmod/fileio"
	"github.com/vsmodtools/vsmod/internal/shared"
)

// fingerprintCmd represents the fingerprint command
var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint <hash format> [name]",
	Short: "Compute archive digests for installed mods",
	Long: `Computes a digest of every installed mod archive, or only the mods
matching a name or mod id. Supported formats: ` + strings.Join(core.FingerprintFormats, ", ") + `.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hashFormat := strings.ToLower(args[0])
		if !slices.Contains(core.FingerprintFormats, hashFormat) {
			shared.Exitf("Hash format '%s' is not supported\n", hashFormat)
		}

		scanner := loadMods()

		mods := scanner.Mods()
		if len(args) > 1 {
			mods = scanner.Get(strings.Join(args[1:], " "))
			if len(mods) == 0 {
				shared.Exitln("No matching mods found!")
			}
		}

		fs := afero.NewOsFs()
		for _, mod := range mods {
			digest, err := fileio.FingerprintArchive(fs, mod.ArchivePath, hashFormat)
			if err != nil {
				shared.Exitf("Error hashing %s: %v\n", mod.ArchivePath, err)
			}
			fmt.Printf("%s: %s\n", mod.ArchivePath, digest)
		}
	},
}

func init() {
	rootCmd.AddCommand(fingerprintCmd)
}
