package main

import (
	"github.com/joho/godotenv"

	"github.com/vsmodtools/vsmod/cmd"
	"github.com/vsmodtools/vsmod/config"
)

var Version string

func main() {
	_ = godotenv.Load()

	config.SetVersion(Version)
	cmd.Execute()
}
