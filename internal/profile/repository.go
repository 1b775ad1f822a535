// Package profile reads and writes the single user profile file.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-agent/internal/schemas"
	"github.com/jonathan/career-agent/internal/types"
)

// timestampLayout matches the human-readable format the profile file has
// always used for last_updated.
const timestampLayout = "2006-01-02 15:04:05"

// Save validates the profile and writes it to path, overwriting any
// existing file. The profile is assigned an ID on first save and its
// LastUpdated stamp is refreshed. The write goes to a temp file in the
// target directory followed by a rename, so a crash never leaves a
// truncated profile behind.
func Save(p *types.UserProfile, path string) error {
	if p == nil {
		return fmt.Errorf("profile is nil")
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.LastUpdated = time.Now().Format(timestampLayout)

	// A nil slice would serialize as null, which the profile schema
	// rejects on load.
	if p.Skills == nil {
		p.Skills = []string{}
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".profile-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set profile file mode: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace profile file: %w", err)
	}

	return nil
}

// Load reads the profile at path. A missing file yields *NotFoundError and
// content that fails schema validation, JSON parsing, or field validation
// yields *CorruptError. Both are recoverable conditions.
func Load(path string) (*types.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	if err := schemas.ValidateString(schemas.UserProfile, string(data)); err != nil {
		return nil, &CorruptError{Path: path, Cause: err}
	}

	var p types.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &CorruptError{Path: path, Cause: err}
	}

	if err := p.Validate(); err != nil {
		return nil, &CorruptError{Path: path, Cause: err}
	}

	return &p, nil
}
