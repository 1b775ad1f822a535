package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-agent/internal/observability"
	"github.com/jonathan/career-agent/internal/paths"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Suggest career paths from interests and skills",
	Long:  "Ranks career paths by how many of the supplied interest and skill tokens appear in each path's keyword set. When nothing matches, a fixed sample of paths is returned instead.",
	RunE:  runPaths,
}

var (
	pathsInterests string
	pathsSkills    string
)

func init() {
	pathsCmd.Flags().StringVarP(&pathsInterests, "interests", "i", "", "Comma-separated interests")
	pathsCmd.Flags().StringVarP(&pathsSkills, "skills", "s", "", "Comma-separated skills")

	rootCmd.AddCommand(pathsCmd)
}

func runPaths(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	tokens := splitTokens(pathsInterests)
	tokens = append(tokens, splitTokens(pathsSkills)...)

	rec := paths.Recommend(store.Paths(), tokens, cfg.TopPaths)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintRecommendation(rec)
	return nil
}

func splitTokens(list string) []string {
	parts := strings.Split(list, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	return tokens
}
