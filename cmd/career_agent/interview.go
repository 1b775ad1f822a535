package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-agent/internal/interview"
	"github.com/jonathan/career-agent/internal/observability"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Get interview questions, tips, and topics for a job title",
	RunE:  runInterview,
}

var interviewTitle string

func init() {
	interviewCmd.Flags().StringVarP(&interviewTitle, "title", "t", "", "Target job title")

	rootCmd.AddCommand(interviewCmd)
}

func runInterview(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	prep := interview.GetPrep(store.Roles(), interviewTitle)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintPrep(prep)
	return nil
}
