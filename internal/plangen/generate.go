// Package plangen fills job-search plan templates with a target role,
// location, and experience level.
package plangen

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-agent/internal/resources"
	"github.com/jonathan/career-agent/internal/types"
)

// NormalizeLevel lowercases level and maps anything that is not a known
// experience level to the default. Unrecognized input is not an error, it
// degrades.
func NormalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "entry":
		return "entry"
	case "senior":
		return "senior"
	case "mid":
		return "mid"
	default:
		return resources.DefaultLevel
	}
}

// Generate builds a plan from the book's base template plus the overlay
// for the given experience level, substituting the job title and location
// into every templated string.
func Generate(book *types.PlanBook, jobTitle, location, experienceLevel string) *types.Plan {
	level := NormalizeLevel(experienceLevel)

	sub := strings.NewReplacer(
		"{job_title}", jobTitle,
		"{location}", location,
	)

	plan := &types.Plan{
		JobTitle:        jobTitle,
		Location:        location,
		ExperienceLevel: level,
		DailyTasks:      substituteAll(sub, book.Base.DailyTasks),
		WeeklyTasks:     substituteAll(sub, book.Base.WeeklyTasks),
		Resources:       append([]string(nil), book.Base.Resources...),
		TimelineWeeks:   book.TimelineWeeks,
	}

	if overlay := book.Level(level); overlay != nil {
		plan.DailyTasks = append(plan.DailyTasks, substituteAll(sub, overlay.DailyTasks)...)
		plan.WeeklyTasks = append(plan.WeeklyTasks, substituteAll(sub, overlay.WeeklyTasks)...)
		plan.Resources = append(plan.Resources, overlay.Resources...)
	}

	plan.Timeline = make([]string, 0, len(book.Timeline))
	for i, entry := range book.Timeline {
		plan.Timeline = append(plan.Timeline, fmt.Sprintf("Week %d: %s", i+1, sub.Replace(entry)))
	}

	return plan
}

func substituteAll(sub *strings.Replacer, items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = sub.Replace(item)
	}
	return out
}
