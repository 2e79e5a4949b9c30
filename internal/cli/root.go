// Package cli defines the command-line entry points of the mybiz server.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mybiz",
	Short: "MyBiz storefront server",
	Long:  "MyBiz serves the public product catalog, static pages and the back-office API from a single binary.",
}

// Execute runs the root command and returns its error for main to handle.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}
