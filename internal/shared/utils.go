package shared

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

func Exitf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
	os.Exit(1)
}

func Exitln(a ...interface{}) {
	fmt.Println(a...)
	os.Exit(1)
}

// DataPath is the configured Vintage Story data directory.
func DataPath() string {
	return viper.GetString("data-path")
}

// ModsPath is the Mods subdirectory of the data directory.
func ModsPath() string {
	return filepath.Join(DataPath(), "Mods")
}
