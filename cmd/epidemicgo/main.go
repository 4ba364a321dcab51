package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgPath string
	debug   bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "epidemicgo",
	Short:   "Event-driven epidemic simulation engine",
	Long:    `epidemicgo runs seeded, deterministic SEIR and airborne epidemic simulations over a contact stream.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to the TOML parameters file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug-level logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}

// Commands are defined in separate files:
// - runCmd in run.go
// - validateCmd in validate.go

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
