package main

import (
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Removes a shadow store left behind by an interrupted run",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, p, cleanup, err := initApp()
		defer cleanup()
		if err != nil {
			return err
		}

		location := a.Stores.Location(p)
		if !a.Stores.Exists(p) {
			dimColor.Printf("No shadow store at %s\n", location)
		}
		// Remove also clears a stray file at the store path.
		if err := a.Stores.Remove(p); err != nil {
			return err
		}
		a.Logger.Info("shadow store removed", "project", p.Name, "git_dir", location)
		successColor.Printf("✓ Cleaned %s\n", location)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(cleanCmd)
}
