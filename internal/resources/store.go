// Package resources loads the static reference data tables the advisory
// engine runs on: resume keyword lists, interview question banks, career
// path mappings, and job-search plan templates. Tables are read once at
// startup and are immutable for the process lifetime.
package resources

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/career-agent/internal/schemas"
	"github.com/jonathan/career-agent/internal/types"
)

const (
	keywordsFile      = "keywords.json"
	interviewsFile    = "interviews.json"
	careerPathsFile   = "career_paths.json"
	planTemplatesFile = "plan_templates.json"
)

const (
	// GeneralCategory is the mandatory fallback bucket that every keyword
	// and interview table must contain.
	GeneralCategory = "general"

	// DefaultLevel is the experience level unrecognized input degrades to.
	DefaultLevel = "mid"
)

// Store holds all reference data tables after a successful load. All
// accessors return shared values that callers must treat as read-only.
type Store struct {
	keywords *types.KeywordTable
	roles    []types.RoleBundle
	paths    []types.CareerPath
	plans    *types.PlanBook
}

// Load reads all reference tables from dir, creating any missing file with
// its built-in default content first. Every table is validated against its
// schema and its mandatory fallback entries; any violation returns a
// *DataLoadError and no partial store.
func Load(dir string) (*Store, error) {
	if dir == "" {
		dir = "resources"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &DataLoadError{Table: dir, Message: "cannot create resources directory", Cause: err}
	}

	var keywords types.KeywordTable
	if err := loadTable(dir, keywordsFile, schemas.KeywordTable, defaultKeywordTable(), &keywords); err != nil {
		return nil, err
	}

	var roleDoc struct {
		Roles []types.RoleBundle `json:"roles"`
	}
	roleDefaults := struct {
		Roles []types.RoleBundle `json:"roles"`
	}{Roles: defaultRoleBundles()}
	if err := loadTable(dir, interviewsFile, schemas.RoleBundles, roleDefaults, &roleDoc); err != nil {
		return nil, err
	}

	var pathDoc struct {
		Paths []types.CareerPath `json:"paths"`
	}
	pathDefaults := struct {
		Paths []types.CareerPath `json:"paths"`
	}{Paths: defaultCareerPaths()}
	if err := loadTable(dir, careerPathsFile, schemas.CareerPaths, pathDefaults, &pathDoc); err != nil {
		return nil, err
	}

	var plans types.PlanBook
	if err := loadTable(dir, planTemplatesFile, schemas.PlanBook, defaultPlanBook(), &plans); err != nil {
		return nil, err
	}

	store := &Store{
		keywords: &keywords,
		roles:    roleDoc.Roles,
		paths:    pathDoc.Paths,
		plans:    &plans,
	}
	store.normalize()

	if err := store.checkFallbacks(); err != nil {
		return nil, err
	}

	return store, nil
}

// loadTable ensures the table file exists (writing defaults if missing),
// validates its content against the schema, and unmarshals it into out.
func loadTable(dir, name, schema string, defaults any, out any) error {
	path := filepath.Join(dir, name)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		data, err := json.MarshalIndent(defaults, "", "  ")
		if err != nil {
			return &DataLoadError{Table: name, Message: "cannot encode default table", Cause: err}
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return &DataLoadError{Table: name, Message: "cannot write default table", Cause: err}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &DataLoadError{Table: name, Message: "cannot read table file", Cause: err}
	}

	if err := schemas.ValidateString(schema, string(data)); err != nil {
		return &DataLoadError{Table: name, Message: "table does not match schema", Cause: err}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &DataLoadError{Table: name, Message: "cannot parse table JSON", Cause: err}
	}

	return nil
}

// normalize lowercases every matchable key so lookups never depend on the
// casing used in the data files.
func (s *Store) normalize() {
	for i := range s.keywords.Categories {
		cat := &s.keywords.Categories[i]
		cat.Name = strings.ToLower(strings.TrimSpace(cat.Name))
		for j, kw := range cat.Keywords {
			cat.Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
		}
	}
	for i := range s.roles {
		s.roles[i].Role = strings.ToLower(strings.TrimSpace(s.roles[i].Role))
	}
	for i := range s.paths {
		for j, kw := range s.paths[i].Keywords {
			s.paths[i].Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
		}
	}
	for i := range s.plans.Levels {
		s.plans.Levels[i].Level = strings.ToLower(strings.TrimSpace(s.plans.Levels[i].Level))
	}
}

// checkFallbacks enforces the mandatory fallback entries: the "general"
// keyword category, the "general" interview bundle with at least one
// question, and the "mid" plan level.
func (s *Store) checkFallbacks() error {
	if s.keywords.Category(GeneralCategory) == nil {
		return &DataLoadError{Table: keywordsFile, Message: fmt.Sprintf("missing mandatory %q category", GeneralCategory)}
	}

	var general *types.RoleBundle
	for i := range s.roles {
		if s.roles[i].Role == GeneralCategory {
			general = &s.roles[i]
			break
		}
	}
	if general == nil {
		return &DataLoadError{Table: interviewsFile, Message: fmt.Sprintf("missing mandatory %q role bundle", GeneralCategory)}
	}
	if len(general.Questions) == 0 {
		return &DataLoadError{Table: interviewsFile, Message: fmt.Sprintf("%q role bundle must have at least one question", GeneralCategory)}
	}

	if s.plans.Level(DefaultLevel) == nil {
		return &DataLoadError{Table: planTemplatesFile, Message: fmt.Sprintf("missing mandatory %q plan level", DefaultLevel)}
	}

	return nil
}

// Keywords returns the keyword table. Read-only.
func (s *Store) Keywords() *types.KeywordTable {
	return s.keywords
}

// Roles returns the interview role bundles in declaration priority order. Read-only.
func (s *Store) Roles() []types.RoleBundle {
	return s.roles
}

// Paths returns the career paths in declaration order. Read-only.
func (s *Store) Paths() []types.CareerPath {
	return s.paths
}

// Plans returns the job-search plan book. Read-only.
func (s *Store) Plans() *types.PlanBook {
	return s.plans
}
