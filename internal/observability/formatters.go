// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted result output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading)
	sb.WriteString("\n")
	shown := items
	truncated := 0
	if len(shown) > maxItemsToShow {
		truncated = len(shown) - maxItemsToShow
		shown = shown[:maxItemsToShow]
	}
	for _, item := range shown {
		sb.WriteString(fmt.Sprintf("  - %s\n", item))
	}
	if truncated > 0 {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", truncated))
	}
}

// PrintAnalysis outputs a human-readable summary of a resume analysis.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d/100\n", result.Score))
	sb.WriteString(fmt.Sprintf("Category: %s\n", result.Category))
	sb.WriteString("\n")
	writeList(&sb, "Keywords found:", result.FoundKeywords)
	writeList(&sb, "Keywords to add:", result.MissingKeywords)
	writeList(&sb, "Suggestions:", result.Suggestions)

	p.printBox("Resume Analysis", strings.TrimRight(sb.String(), "\n"))
}

// PrintPrep outputs an interview preparation bundle.
func (p *Printer) PrintPrep(prep *types.PrepBundle) {
	if prep == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role: %s\n", prep.Role))
	sb.WriteString("\n")
	writeList(&sb, "Questions to expect:", prep.Questions)
	writeList(&sb, "Preparation tips:", prep.Tips)
	writeList(&sb, "Technical topics to study:", prep.Topics)

	p.printBox("Interview Preparation", strings.TrimRight(sb.String(), "\n"))
}

// PrintRecommendation outputs ranked career path suggestions.
func (p *Printer) PrintRecommendation(rec *types.Recommendation) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	if rec.Inexact {
		sb.WriteString("No close matches; showing a sample of paths to explore.\n\n")
	}
	for i, match := range rec.Matches {
		sb.WriteString(fmt.Sprintf("%d. %s (matched %d)\n", i+1, match.Path, match.MatchCount))
		for _, step := range match.NextSteps {
			sb.WriteString(fmt.Sprintf("   - %s\n", step))
		}
	}

	p.printBox("Career Path Suggestions", strings.TrimRight(sb.String(), "\n"))
}

// PrintPlan outputs a generated job-search plan.
func (p *Printer) PrintPlan(plan *types.Plan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target:   %s in %s\n", plan.JobTitle, plan.Location))
	sb.WriteString(fmt.Sprintf("Level:    %s\n", plan.ExperienceLevel))
	sb.WriteString(fmt.Sprintf("Timeline: %d weeks\n", plan.TimelineWeeks))
	sb.WriteString("\n")
	writeList(&sb, "Daily tasks:", plan.DailyTasks)
	writeList(&sb, "Weekly tasks:", plan.WeeklyTasks)
	writeList(&sb, "Resources:", plan.Resources)
	writeList(&sb, "Timeline:", plan.Timeline)

	p.printBox("Job Search Plan", strings.TrimRight(sb.String(), "\n"))
}

// PrintProfile outputs a loaded user profile.
func (p *Printer) PrintProfile(profile *types.UserProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Title:      %s\n", profile.CurrentTitle))
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", profile.YearsExperience))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", profile.Education))
	writeList(&sb, "Skills:", profile.Skills)
	if profile.LastUpdated != "" {
		sb.WriteString(fmt.Sprintf("Updated:    %s\n", profile.LastUpdated))
	}

	p.printBox("User Profile", strings.TrimRight(sb.String(), "\n"))
}
