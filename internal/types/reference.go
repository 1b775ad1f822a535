package types

// KeywordCategory represents one named bucket of resume keywords.
// Keywords are single lowercase tokens; multi-word entries can never
// match a tokenized resume and are rejected at load time.
type KeywordCategory struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// KeywordTable represents the full keyword reference table.
// Category order is the author-defined declaration order and is
// significant for category selection.
type KeywordTable struct {
	Categories []KeywordCategory `json:"categories"`
}

// Category returns the category with the given name, or nil if absent.
func (t *KeywordTable) Category(name string) *KeywordCategory {
	for i := range t.Categories {
		if t.Categories[i].Name == name {
			return &t.Categories[i]
		}
	}
	return nil
}

// RoleBundle represents the interview preparation material for one role
// category. Declaration order across bundles is the matching priority.
type RoleBundle struct {
	Role      string   `json:"role"`
	Questions []string `json:"questions"`
	Tips      []string `json:"tips"`
	Topics    []string `json:"topics"`
}

// CareerPath represents one suggestible career path with the interest and
// skill keywords associated with it
type CareerPath struct {
	Name      string   `json:"name"`
	Keywords  []string `json:"keywords"`
	NextSteps []string `json:"next_steps"`
}

// PlanTemplate represents the task and resource lists shared by every
// job-search plan, before placeholder substitution
type PlanTemplate struct {
	DailyTasks  []string `json:"daily_tasks"`
	WeeklyTasks []string `json:"weekly_tasks"`
	Resources   []string `json:"resources"`
}

// LevelOverlay represents the extra tasks and resources appended to the
// base template for one experience level
type LevelOverlay struct {
	Level       string   `json:"level"`
	DailyTasks  []string `json:"daily_tasks,omitempty"`
	WeeklyTasks []string `json:"weekly_tasks,omitempty"`
	Resources   []string `json:"resources,omitempty"`
}

// PlanBook represents the full job-search plan reference table: base
// template, per-level overlays, and the week-by-week timeline
type PlanBook struct {
	TimelineWeeks int            `json:"timeline_weeks"`
	Timeline      []string       `json:"timeline"`
	Base          PlanTemplate   `json:"base"`
	Levels        []LevelOverlay `json:"levels"`
}

// Level returns the overlay for the given normalized level, or nil if absent.
func (b *PlanBook) Level(level string) *LevelOverlay {
	for i := range b.Levels {
		if b.Levels[i].Level == level {
			return &b.Levels[i]
		}
	}
	return nil
}
