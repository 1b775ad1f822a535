package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-agent/internal/analyzer"
	"github.com/jonathan/career-agent/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against role-specific keywords",
	Long:  "Tokenizes the resume text, matches it against the keyword category closest to the target job title, and reports a 0-100 score with found and missing keywords plus improvement suggestions.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile string
	analyzeTitle      string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeTitle, "title", "t", "", "Target job title hint for keyword category selection")

	if err := analyzeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	resumeText, err := os.ReadFile(analyzeResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", analyzeResumeFile, err)
	}

	result := analyzer.Analyze(store.Keywords(), string(resumeText), analyzeTitle)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAnalysis(result)
	return nil
}
