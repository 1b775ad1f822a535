package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-agent/internal/observability"
	"github.com/jonathan/career-agent/internal/plangen"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a job-search plan for a target role and location",
	Long:  "Fills the plan template for the given experience level with the target job title and location. Unrecognized experience levels fall back to mid.",
	RunE:  runPlan,
}

var (
	planTitle    string
	planLocation string
	planLevel    string
)

func init() {
	planCmd.Flags().StringVarP(&planTitle, "title", "t", "", "Target job title (required)")
	planCmd.Flags().StringVarP(&planLocation, "location", "l", "", "Preferred location (required)")
	planCmd.Flags().StringVar(&planLevel, "level", "mid", "Experience level: entry, mid, or senior")

	if err := planCmd.MarkFlagRequired("title"); err != nil {
		panic(fmt.Sprintf("failed to mark title flag as required: %v", err))
	}
	if err := planCmd.MarkFlagRequired("location"); err != nil {
		panic(fmt.Sprintf("failed to mark location flag as required: %v", err))
	}

	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	plan := plangen.Generate(store.Plans(), planTitle, planLocation, planLevel)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintPlan(plan)
	return nil
}
