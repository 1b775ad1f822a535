// Package types provides type definitions for structured data used throughout the career-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// UserProfile represents a single user's career profile as stored on disk
type UserProfile struct {
	ID              string   `json:"id,omitempty"`
	Name            string   `json:"name" validate:"required,min=1"`
	CurrentTitle    string   `json:"current_title"`
	YearsExperience int      `json:"years_experience" validate:"min=0"`
	Education       string   `json:"education"`
	Skills          []string `json:"skills"`
	LastUpdated     string   `json:"last_updated,omitempty"`
}

// Validate validates the profile fields against their constraints
func (p *UserProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
