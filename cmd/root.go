// Package cmd provides the command-line interface for restock.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "restock",
	Short: "Restock computes optimal inventory-replenishment policies " +
		"and simulates them under stochastic demand.",
	Long: `Restock models a single-product periodic-review inventory ` +
		`problem as a Markov Decision Process, solves it with value ` +
		`iteration, summarizes the result as an (s, S) reorder policy, ` +
		`and simulates demand trajectories under the solved policy.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	// Parameters may also come from a local .env file.
	godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
