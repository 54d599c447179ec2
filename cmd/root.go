package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vsmodtools/vsmod/config"
	"github.com/vsmodtools/vsmod/core"
	"github.com/vsmodtools/vsmod/fileio"
	"github.com/vsmodtools/vsmod/internal/shared"
)

// rootCmd represents the base command when called without any subcommands,
// which drops into the interactive shell.
var rootCmd = &cobra.Command{
	Use:   "vsmod",
	Short: "Manage installed Vintage Story mods",
	Long: `vsmod inspects the zip-format mod archives installed in a Vintage Story
data directory, reading the modinfo.json metadata out of each one. Run
without arguments for an interactive shell.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runShell()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	rootCmd.Version = config.Version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("data-path", config.DefaultDataPath, "The Vintage Story data directory to manage")
	_ = viper.BindPFlag("data-path", rootCmd.PersistentFlags().Lookup("data-path"))
	rootCmd.PersistentFlags().BoolP("non-interactive", "y", false, "Do not prompt or show menus; pick defaults")
	_ = viper.BindPFlag("non-interactive", rootCmd.PersistentFlags().Lookup("non-interactive"))
}

func initConfig() {
	viper.SetConfigName(".vsmod")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	viper.SetEnvPrefix("vsmod")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			shared.Exitf("Error reading config file: %v\n", err)
		}
	}
}

// loadMods builds a scanner for the configured data directory, reporting
// skipped archives on stderr and exiting on filesystem failure.
func loadMods() *fileio.Scanner {
	scanner, skipped, err := fileio.LoadScanner(shared.DataPath())
	if err != nil {
		shared.Exitln(err)
	}
	reportSkipped(skipped)
	return scanner
}

func reportSkipped(skipped []*core.ParseError) {
	for _, parseErr := range skipped {
		fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", parseErr.Path, parseErr.Err)
	}
}
