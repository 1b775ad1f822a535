// Package analyzer scores resume text against the keyword table and
// produces improvement suggestions.
package analyzer

import (
	"math"
	"strings"

	"github.com/jonathan/career-agent/internal/resources"
	"github.com/jonathan/career-agent/internal/types"
)

// Score brackets for keyword-coverage advice. Boundaries are monotonic: a
// lower score never yields more lenient advice than a higher one.
const (
	lowScoreCeiling  = 40
	goodScoreCeiling = 70
)

const shortResumeWordCount = 200

// achievementTokens are the verbs that signal measurable, outcome-oriented
// resume language.
var achievementTokens = []string{
	"achieved", "accomplished", "improved", "increased",
	"decreased", "reduced", "saved", "delivered",
}

// Analyze scores resumeText against the keyword category matching
// jobTitleHint, falling back to the general category. Empty resume text is
// not an error: it scores 0 with every keyword reported missing. The
// result is a pure function of the inputs.
func Analyze(table *types.KeywordTable, resumeText, jobTitleHint string) *types.AnalysisResult {
	category := selectCategory(table, jobTitleHint)
	tokens := TokenSet(resumeText)

	found := make([]string, 0, len(category.Keywords))
	missing := make([]string, 0, len(category.Keywords))
	seen := make(map[string]struct{}, len(category.Keywords))
	for _, kw := range category.Keywords {
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		if _, ok := tokens[kw]; ok {
			found = append(found, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	score := 0
	if len(seen) > 0 {
		score = int(math.Round(100 * float64(len(found)) / float64(len(seen))))
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &types.AnalysisResult{
		Score:           score,
		Category:        category.Name,
		FoundKeywords:   found,
		MissingKeywords: missing,
		Suggestions:     buildSuggestions(score, resumeText, tokens),
	}
}

// selectCategory picks the first declared category whose name contains the
// hint or is contained by it, case-insensitively. An empty or unmatched
// hint selects the general category.
func selectCategory(table *types.KeywordTable, hint string) *types.KeywordCategory {
	hintLower := strings.ToLower(strings.TrimSpace(hint))
	if hintLower != "" {
		for i := range table.Categories {
			name := table.Categories[i].Name
			if strings.Contains(hintLower, name) || strings.Contains(name, hintLower) {
				return &table.Categories[i]
			}
		}
	}
	if general := table.Category(resources.GeneralCategory); general != nil {
		return general
	}
	// The store guarantees a general category; this only protects callers
	// holding a hand-built table.
	return &types.KeywordCategory{Name: resources.GeneralCategory}
}

func buildSuggestions(score int, resumeText string, tokens map[string]struct{}) []string {
	suggestions := make([]string, 0, 4)

	switch {
	case score < lowScoreCeiling:
		suggestions = append(suggestions, "Your resume is missing most of the keywords screeners look for in this role. Add more role-specific keywords.")
	case score < goodScoreCeiling:
		suggestions = append(suggestions, "A good start. Work the remaining keywords into your experience bullets where they genuinely apply.")
	default:
		suggestions = append(suggestions, "Strong keyword coverage. Focus on quantifying achievements rather than adding more keywords.")
	}

	if len(Tokenize(resumeText)) < shortResumeWordCount {
		suggestions = append(suggestions, "Your resume seems short. Consider adding more details about your experience.")
	}

	if !hasToken(tokens, "objective") && !hasToken(tokens, "summary") {
		suggestions = append(suggestions, "Consider adding a career objective or professional summary.")
	}

	achievementFound := false
	for _, verb := range achievementTokens {
		if hasToken(tokens, verb) {
			achievementFound = true
			break
		}
	}
	if !achievementFound {
		suggestions = append(suggestions, "Add more achievement-oriented language with measurable results.")
	}

	return suggestions
}

func hasToken(tokens map[string]struct{}, tok string) bool {
	_, ok := tokens[tok]
	return ok
}
