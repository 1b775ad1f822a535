package plangen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-agent/internal/types"
)

func testBook() *types.PlanBook {
	return &types.PlanBook{
		TimelineWeeks: 2,
		Timeline: []string{
			"Research companies hiring {job_title} roles",
			"Begin applications in {location}",
		},
		Base: types.PlanTemplate{
			DailyTasks:  []string{"Check new {job_title} postings"},
			WeeklyTasks: []string{"Apply to positions in {location}"},
			Resources:   []string{"LinkedIn", "Indeed"},
		},
		Levels: []types.LevelOverlay{
			{
				Level:      "entry",
				DailyTasks: []string{"Spend 30 minutes on skill development"},
				Resources:  []string{"University career services"},
			},
			{
				Level:       "mid",
				WeeklyTasks: []string{"Research industry trends"},
			},
			{
				Level:       "senior",
				WeeklyTasks: []string{"Schedule informational interviews"},
			},
		},
	}
}

func TestNormalizeLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"entry", "entry"},
		{"Mid", "mid"},
		{"SENIOR", "senior"},
		{"  entry  ", "entry"},
		{"principal", "mid"},
		{"", "mid"},
		{"unknownLevel", "mid"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeLevel(tt.input), "input %q", tt.input)
	}
}

func TestGenerate_PlaceholderSubstitution(t *testing.T) {
	plan := Generate(testBook(), "Data Engineer", "Berlin", "mid")

	assert.Equal(t, "Check new Data Engineer postings", plan.DailyTasks[0])
	assert.Equal(t, "Apply to positions in Berlin", plan.WeeklyTasks[0])
	assert.Equal(t, "Week 1: Research companies hiring Data Engineer roles", plan.Timeline[0])
	assert.Equal(t, "Week 2: Begin applications in Berlin", plan.Timeline[1])
}

func TestGenerate_DefaultDegradation(t *testing.T) {
	// An unrecognized level produces exactly the mid plan
	unknown := Generate(testBook(), "X", "Y", "unknownLevel")
	mid := Generate(testBook(), "X", "Y", "mid")

	assert.Equal(t, mid, unknown)
	assert.Equal(t, "mid", unknown.ExperienceLevel)
}

func TestGenerate_LevelOverlays(t *testing.T) {
	entry := Generate(testBook(), "X", "Y", "entry")
	senior := Generate(testBook(), "X", "Y", "senior")

	assert.Contains(t, entry.DailyTasks, "Spend 30 minutes on skill development")
	assert.Contains(t, entry.Resources, "University career services")
	assert.NotContains(t, entry.WeeklyTasks, "Schedule informational interviews")

	assert.Contains(t, senior.WeeklyTasks, "Schedule informational interviews")
	assert.NotContains(t, senior.DailyTasks, "Spend 30 minutes on skill development")
}

func TestGenerate_CarriesTimelineWeeks(t *testing.T) {
	plan := Generate(testBook(), "X", "Y", "entry")

	assert.Equal(t, 2, plan.TimelineWeeks)
	require.Len(t, plan.Timeline, 2)
}

func TestGenerate_DoesNotMutateBook(t *testing.T) {
	book := testBook()
	baseDaily := len(book.Base.DailyTasks)
	baseResources := len(book.Base.Resources)

	_ = Generate(book, "X", "Y", "entry")
	_ = Generate(book, "X", "Y", "senior")

	assert.Len(t, book.Base.DailyTasks, baseDaily)
	assert.Len(t, book.Base.Resources, baseResources)
	assert.Equal(t, testBook(), book)
}
