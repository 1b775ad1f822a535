// Package main provides the entry point for the career-agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_agent",
	Short: "Career development advisory CLI",
	Long:  "Career agent scores resumes against role keywords, retrieves interview question sets, suggests career paths, and generates templated job-search plans from locally stored reference data.",
}

var (
	rootConfigPath   string
	rootResourcesDir string
	rootVerbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&rootResourcesDir, "resources", "", "Directory holding the reference data tables")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed output")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
