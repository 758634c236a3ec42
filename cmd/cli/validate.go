package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Checks the project name and root structure without contacting GitHub",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, p, cleanup, err := initApp()
		defer cleanup()
		if err != nil {
			return err
		}

		if err := a.Validator.Validate(p); err != nil {
			return err
		}
		exists, err := a.Metadata.Exists(p)
		if err != nil {
			return err
		}
		if exists {
			if _, err := a.Metadata.Load(p); err != nil {
				return fmt.Errorf("%w\n\nTip: Pass --override-metadata when submitting to write a new metadata.json", err)
			}
		}

		successColor.Printf("✓ %s is ready to submit\n", p.Name)
		if !exists {
			dimColor.Println("   metadata.json will be created on the first submission")
		}
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(validateCmd)
}
