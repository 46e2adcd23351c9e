// Package main provides the entry point for the DocScope governance auditor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docscope",
	Short: "Evidence-based auditor for AI documentation",
	Long:  "DocScope audits AI documentation artifacts (model cards, system cards) against governance categories, compares them with the frameworks that govern them, and derives evidence-based policy recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
