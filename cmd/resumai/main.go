// Package main provides the entry point for the resumai career advice service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumai",
	Short: "Career advice assistant",
	Long:  "resumai turns free-form career questions into structured advice records via chat-completion models, with a mock fallback when no model is reachable. Serve mode exposes a REST API with per-session conversation history.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
