// Package cmd implements nssautouserctl, an operator tool for authoring
// and debugging nss-autouser configuration files without installing the
// NSS module itself.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "nssautouserctl",
	Short:        "nssautouserctl",
	SilenceUsage: true,
	Long:         `Operator CLI for the nss-autouser configuration language: validate, inspect, and dry-run policy resolution.`,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
