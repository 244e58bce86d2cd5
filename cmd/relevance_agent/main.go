// Package main provides the CLI entry point for the job relevance engine.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "relevance_agent",
	Short: "Job relevance filtering and adaptive learning engine",
	Long:  "Evaluates scraped job postings against static disqualification filters, learns scoring-weight adjustments from rejection feedback, and maps application-form labels onto canonical keys.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
