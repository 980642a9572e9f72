// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"encoding/json"
	"time"
)

// PasswordPlaceholder is what the durable store holds instead of the admin
// password. The real password only ever lives in the short-lived store.
const PasswordPlaceholder = "[PASSWORD_PROTECTED]"

// Canonical wizard step IDs.
const (
	StepIDOrganization = "organization"
	StepIDAdmin        = "admin"
	StepIDTeam         = "team"
	StepIDReview       = "review"
	StepIDComplete     = "complete"
)

type Step struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
}

type Organization struct {
	Name     string `json:"name,omitempty"`
	Industry string `json:"industry,omitempty"`
	Size     string `json:"size,omitempty"`
	Website  string `json:"website,omitempty"`
}

type Admin struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role,omitempty"`
	// PasswordSet marks that a password was supplied, so Load can rehydrate
	// it from the short-lived store.
	PasswordSet bool `json:"password_set,omitempty"`
}

// TeamEntry is a department or service type collected by the wizard.
type TeamEntry struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UnmarshalJSON accepts both a bare string and an object, normalizing the
// wizard's two historical payload shapes into one at the boundary.
func (e *TeamEntry) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		e.Name = name
		return nil
	}

	type entry TeamEntry
	var obj entry
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	*e = TeamEntry(obj)
	return nil
}

type Team struct {
	ExpectedUsers string      `json:"expected_users,omitempty"`
	Departments   []TeamEntry `json:"departments,omitempty"`
	ServiceTypes  []TeamEntry `json:"service_types,omitempty"`
}

type FieldMessage struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Validation struct {
	Errors   []FieldMessage `json:"errors"`
	Warnings []FieldMessage `json:"warnings"`
}

type State struct {
	CurrentStepIndex int          `json:"current_step_index"`
	Steps            []Step       `json:"steps"`
	Organization     Organization `json:"organization"`
	Admin            Admin        `json:"admin"`
	Team             Team         `json:"team"`
	Validation       Validation   `json:"validation"`
	Completed        bool         `json:"completed"`
	Submitted        bool         `json:"submitted"`
	ExpiresAt        *time.Time   `json:"expires_at,omitempty"`
	LastUpdated      time.Time    `json:"last_updated"`
}

// Expired reports whether the state's submission window has passed. A state
// with no expiry never expires.
func (s *State) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && s.ExpiresAt.Before(now)
}

func (s *State) Clone() *State {
	clone := *s

	clone.Steps = append([]Step(nil), s.Steps...)
	clone.Team.Departments = append([]TeamEntry(nil), s.Team.Departments...)
	clone.Team.ServiceTypes = append([]TeamEntry(nil), s.Team.ServiceTypes...)
	clone.Validation.Errors = append([]FieldMessage(nil), s.Validation.Errors...)
	clone.Validation.Warnings = append([]FieldMessage(nil), s.Validation.Warnings...)

	if s.ExpiresAt != nil {
		expiresAt := *s.ExpiresAt
		clone.ExpiresAt = &expiresAt
	}

	return &clone
}

// CurrentStep returns the step matching CurrentStepIndex.
func (s *State) CurrentStep() Step {
	if s.CurrentStepIndex < 0 || s.CurrentStepIndex >= len(s.Steps) {
		return Step{}
	}
	return s.Steps[s.CurrentStepIndex]
}

func DefaultSteps() []Step {
	return []Step{
		{ID: StepIDOrganization, Title: "Organization details", Current: true},
		{ID: StepIDAdmin, Title: "Admin account"},
		{ID: StepIDTeam, Title: "Team setup"},
		{ID: StepIDReview, Title: "Review"},
		{ID: StepIDComplete, Title: "Complete"},
	}
}

// NewState returns the canonical initial wizard state.
func NewState() *State {
	return &State{
		CurrentStepIndex: 0,
		Steps:            DefaultSteps(),
		Validation: Validation{
			Errors:   []FieldMessage{},
			Warnings: []FieldMessage{},
		},
	}
}

// DefaultDepartments seeds tenants whose wizard left the department list
// empty.
func DefaultDepartments() []TeamEntry {
	return []TeamEntry{
		{Name: "Administration"},
		{Name: "Field Operations"},
		{Name: "Sales"},
	}
}

// DefaultServiceTypes mirrors DefaultDepartments for service categories.
func DefaultServiceTypes() []TeamEntry {
	return []TeamEntry{
		{Name: "General Service"},
		{Name: "Installation"},
		{Name: "Maintenance"},
	}
}
