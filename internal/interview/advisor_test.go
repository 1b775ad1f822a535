package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-agent/internal/types"
)

func testRoles() []types.RoleBundle {
	return []types.RoleBundle{
		{
			Role:      "software engineer",
			Questions: []string{"Walk me through a system you designed"},
			Tips:      []string{"Practice coding problems"},
			Topics:    []string{"Data structures", "Algorithms"},
		},
		{
			Role:   "project manager",
			Topics: []string{"Risk management", "Agile methodologies"},
		},
		{
			Role:      "marketing",
			Topics:    []string{"Campaign analytics"},
			Questions: []string{"Tell me about a campaign you ran"},
		},
		{
			Role:      "general",
			Questions: []string{"Tell me about yourself", "Why should we hire you?"},
			Tips:      []string{"Research the company thoroughly"},
			Topics:    []string{},
		},
	}
}

func TestGetPrep_TitleContainsRoleName(t *testing.T) {
	prep := GetPrep(testRoles(), "Senior Software Engineer")

	assert.Equal(t, "software engineer", prep.Role)
	assert.Contains(t, prep.Topics, "Data structures")
}

func TestGetPrep_RoleNameContainsTitleToken(t *testing.T) {
	// "engineer" is a token of the title and a substring of the role name
	prep := GetPrep(testRoles(), "Platform Engineer")
	assert.Equal(t, "software engineer", prep.Role)

	prep = GetPrep(testRoles(), "Marketing Specialist")
	assert.Equal(t, "marketing", prep.Role)
}

func TestGetPrep_FirstDeclaredMatchWins(t *testing.T) {
	// "manager" matches "project manager" before "marketing" is reached,
	// even though the title starts with "Marketing"
	prep := GetPrep(testRoles(), "Marketing Manager")
	assert.Equal(t, "project manager", prep.Role)
}

func TestGetPrep_PriorityOrderIsDeterministic(t *testing.T) {
	// "manager" alone only matches "project manager"
	prep := GetPrep(testRoles(), "Delivery Manager")
	assert.Equal(t, "project manager", prep.Role)
}

func TestGetPrep_ShortTokensDoNotMatch(t *testing.T) {
	// "a" is a substring of almost every role name; stopword-sized
	// tokens must not route the title
	prep := GetPrep(testRoles(), "A Driver")
	assert.Equal(t, "general", prep.Role)

	prep = GetPrep(testRoles(), "Head of Security")
	assert.Equal(t, "general", prep.Role)
}

func TestGetPrep_UnmatchedFallsBackToGeneral(t *testing.T) {
	for _, title := range []string{"Pastry Chef", "", "   "} {
		prep := GetPrep(testRoles(), title)
		assert.Equal(t, "general", prep.Role, "title %q", title)
	}
}

func TestGetPrep_QuestionsNeverEmpty(t *testing.T) {
	titles := []string{
		"Software Engineer",
		"Project Manager",
		"Marketing Lead",
		"Zookeeper",
		"",
	}

	for _, title := range titles {
		prep := GetPrep(testRoles(), title)
		require.NotNil(t, prep, "title %q", title)
		assert.NotEmpty(t, prep.Questions, "title %q", title)
	}
}

func TestGetPrep_BorrowsGeneralQuestionsAndTips(t *testing.T) {
	// "project manager" declares topics only; questions and tips come from
	// the general bundle
	prep := GetPrep(testRoles(), "Project Manager")

	assert.Equal(t, "project manager", prep.Role)
	assert.Contains(t, prep.Questions, "Tell me about yourself")
	assert.Contains(t, prep.Tips, "Research the company thoroughly")
	assert.Contains(t, prep.Topics, "Risk management")
}

func TestGetPrep_CaseInsensitive(t *testing.T) {
	prep := GetPrep(testRoles(), "SOFTWARE ENGINEER")
	assert.Equal(t, "software engineer", prep.Role)
}
