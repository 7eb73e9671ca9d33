// Package main provides the entry point for the keyword ranking CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kwrank",
	Short: "Keyword ranking for job postings",
	Long:  "kwrank scores keyword candidates against a job posting, flags knockout requirements, folds semantic aliases, and writes a ranked analysis with a resume injection checklist.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
