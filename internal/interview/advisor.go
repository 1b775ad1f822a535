// Package interview maps job titles to interview preparation bundles.
package interview

import (
	"strings"

	"github.com/jonathan/career-agent/internal/analyzer"
	"github.com/jonathan/career-agent/internal/resources"
	"github.com/jonathan/career-agent/internal/types"
)

// GetPrep returns the preparation bundle for jobTitle. Matching is
// case-insensitive containment in either direction: the title contains a
// role name, or a role name contains one of the title's tokens. The first
// bundle in declaration order wins; an unmatched title returns the general
// bundle. A matched role with no questions or tips of its own borrows the
// general bundle's, so questions are never empty.
func GetPrep(roles []types.RoleBundle, jobTitle string) *types.PrepBundle {
	matched := matchRole(roles, jobTitle)
	general := findRole(roles, resources.GeneralCategory)
	if matched == nil {
		matched = general
	}
	if matched == nil {
		// The store guarantees a general bundle; empty result only for
		// hand-built role lists.
		return &types.PrepBundle{Role: resources.GeneralCategory}
	}

	prep := &types.PrepBundle{
		Role:      matched.Role,
		Questions: matched.Questions,
		Tips:      matched.Tips,
		Topics:    matched.Topics,
	}
	if general != nil && matched != general {
		if len(prep.Questions) == 0 {
			prep.Questions = general.Questions
		}
		if len(prep.Tips) == 0 {
			prep.Tips = general.Tips
		}
	}
	return prep
}

// minMatchTokenLen keeps stopword-sized title tokens ("a", "of") from
// substring-matching unrelated role names.
const minMatchTokenLen = 3

func matchRole(roles []types.RoleBundle, jobTitle string) *types.RoleBundle {
	titleLower := strings.ToLower(strings.TrimSpace(jobTitle))
	if titleLower == "" {
		return nil
	}
	tokens := analyzer.Tokenize(titleLower)

	for i := range roles {
		role := roles[i].Role
		if strings.Contains(titleLower, role) {
			return &roles[i]
		}
		for _, tok := range tokens {
			if len(tok) < minMatchTokenLen {
				continue
			}
			if strings.Contains(role, tok) {
				return &roles[i]
			}
		}
	}
	return nil
}

func findRole(roles []types.RoleBundle, name string) *types.RoleBundle {
	for i := range roles {
		if roles[i].Role == name {
			return &roles[i]
		}
	}
	return nil
}
