// Package paths ranks career paths against user-supplied interest and
// skill tokens.
package paths

import (
	"sort"
	"strings"

	"github.com/jonathan/career-agent/internal/types"
)

// DefaultFallbackCount is how many paths the zero-match fallback returns.
const DefaultFallbackCount = 3

// Recommend counts, for every career path, how many input tokens appear in
// the path's keyword set and returns the paths sorted by descending match
// count. The sort is stable, so tied paths keep their declaration order.
// Paths with no matches are dropped; if nothing matches at all, the first
// fallbackCount declared paths are returned with Inexact set.
func Recommend(catalog []types.CareerPath, interestsAndSkills []string, fallbackCount int) *types.Recommendation {
	if fallbackCount <= 0 {
		fallbackCount = DefaultFallbackCount
	}

	tokens := make(map[string]struct{}, len(interestsAndSkills))
	for _, tok := range interestsAndSkills {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" {
			tokens[tok] = struct{}{}
		}
	}

	matches := make([]types.PathMatch, 0, len(catalog))
	for _, path := range catalog {
		// Intersection size over distinct keywords.
		count := 0
		seen := make(map[string]struct{}, len(path.Keywords))
		for _, kw := range path.Keywords {
			if _, dup := seen[kw]; dup {
				continue
			}
			seen[kw] = struct{}{}
			if _, ok := tokens[kw]; ok {
				count++
			}
		}
		if count > 0 {
			matches = append(matches, types.PathMatch{
				Path:       path.Name,
				MatchCount: count,
				NextSteps:  path.NextSteps,
			})
		}
	}

	if len(matches) == 0 {
		return fallback(catalog, fallbackCount)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchCount > matches[j].MatchCount
	})

	return &types.Recommendation{Matches: matches}
}

// fallback returns the first n declared paths with zero scores so the
// caller always has something to show. Deterministic by construction.
func fallback(catalog []types.CareerPath, n int) *types.Recommendation {
	if n > len(catalog) {
		n = len(catalog)
	}
	matches := make([]types.PathMatch, 0, n)
	for _, path := range catalog[:n] {
		matches = append(matches, types.PathMatch{
			Path:      path.Name,
			NextSteps: path.NextSteps,
		})
	}
	return &types.Recommendation{Matches: matches, Inexact: true}
}
