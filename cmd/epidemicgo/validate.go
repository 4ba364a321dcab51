package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dlantz/epidemicgo"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Args:  cobra.NoArgs,
	Short: "Check a parameters file without running a simulation",
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	if cfgPath == "" {
		return fmt.Errorf("--config flag is required")
	}
	params, err := epidemicgo.LoadParameters(cfgPath)
	if err != nil {
		return fmt.Errorf("loading parameters: %w", err)
	}
	if err := params.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	fmt.Printf("%s is valid for model %q\n", cfgPath, params.Model)
	return nil
}
