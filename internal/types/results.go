package types

// AnalysisResult represents the outcome of scoring a resume against one
// keyword category
type AnalysisResult struct {
	Score           int      `json:"score"`
	Category        string   `json:"category"`
	FoundKeywords   []string `json:"found_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	Suggestions     []string `json:"suggestions"`
}

// PrepBundle represents the interview preparation material returned for a
// job title
type PrepBundle struct {
	Role      string   `json:"role"`
	Questions []string `json:"questions"`
	Tips      []string `json:"tips"`
	Topics    []string `json:"topics"`
}

// PathMatch represents one recommended career path with its match strength
type PathMatch struct {
	Path       string   `json:"path"`
	MatchCount int      `json:"match_count"`
	NextSteps  []string `json:"next_steps"`
}

// Recommendation represents an ordered list of career path matches.
// Inexact is set when no path matched any input token and the result is
// the deterministic fallback selection instead.
type Recommendation struct {
	Matches []PathMatch `json:"matches"`
	Inexact bool        `json:"inexact"`
}

// Plan represents a generated job-search plan with all placeholders
// substituted
type Plan struct {
	JobTitle        string   `json:"job_title"`
	Location        string   `json:"location"`
	ExperienceLevel string   `json:"experience_level"`
	DailyTasks      []string `json:"daily_tasks"`
	WeeklyTasks     []string `json:"weekly_tasks"`
	Resources       []string `json:"resources"`
	Timeline        []string `json:"timeline"`
	TimelineWeeks   int      `json:"timeline_weeks"`
}
