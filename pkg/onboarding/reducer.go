// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"time"

	"github.com/shiftline/onboarding-service/internal/logging"
)

type ActionType string

const (
	ActionNextStep              ActionType = "NEXT_STEP"
	ActionPreviousStep          ActionType = "PREVIOUS_STEP"
	ActionSetStep               ActionType = "SET_STEP"
	ActionUpdateOrganization    ActionType = "UPDATE_ORGANIZATION"
	ActionUpdateAdmin           ActionType = "UPDATE_ADMIN"
	ActionUpdateTeam            ActionType = "UPDATE_TEAM"
	ActionSetValidationErrors   ActionType = "SET_VALIDATION_ERRORS"
	ActionSetValidationWarnings ActionType = "SET_VALIDATION_WARNINGS"
	ActionCompleteStep          ActionType = "COMPLETE_STEP"
	ActionCompleteOnboarding    ActionType = "COMPLETE_ONBOARDING"
	ActionSubmitOnboarding      ActionType = "SUBMIT_ONBOARDING"
	ActionLoadSavedState        ActionType = "LOAD_SAVED_STATE"
	ActionResetOnboarding       ActionType = "RESET_ONBOARDING"
)

// submissionWindow is how long a submitted state remains processable.
const submissionWindow = 24 * time.Hour

type Action struct {
	Type         ActionType     `json:"type"`
	StepIndex    int            `json:"step_index,omitempty"`
	StepID       string         `json:"step_id,omitempty"`
	Organization *Organization  `json:"organization,omitempty"`
	Admin        *Admin         `json:"admin,omitempty"`
	Team         *Team          `json:"team,omitempty"`
	Errors       []FieldMessage `json:"errors,omitempty"`
	Warnings     []FieldMessage `json:"warnings,omitempty"`
	State        *State         `json:"state,omitempty"`
}

// Reducer is the pure wizard state machine. It never touches storage; the
// persistence side effect of each transition belongs to the caller.
type Reducer struct {
	logger logging.LoggerInterface
	now    func() time.Time
}

func NewReducer(logger logging.LoggerInterface) *Reducer {
	return &Reducer{
		logger: logger,
		now:    time.Now,
	}
}

func (r *Reducer) Reduce(state *State, action Action) *State {
	next := state.Clone()

	switch action.Type {
	case ActionNextStep:
		// advance to the next incomplete step, clamped to the last one
		target := len(next.Steps) - 1
		for i := next.CurrentStepIndex + 1; i < len(next.Steps); i++ {
			if !next.Steps[i].Completed {
				target = i
				break
			}
		}
		setCurrentStep(next, target)

	case ActionPreviousStep:
		target := next.CurrentStepIndex - 1
		if target < 0 {
			target = 0
		}
		setCurrentStep(next, target)

	case ActionSetStep:
		target := clampStepIndex(action.StepIndex, len(next.Steps))
		setCurrentStep(next, target)
		// jumping forward marks everything behind the target as visited;
		// jumping backward never un-completes
		for i := 0; i < target; i++ {
			next.Steps[i].Completed = true
		}

	case ActionUpdateOrganization:
		if action.Organization != nil {
			mergeOrganization(&next.Organization, action.Organization)
		}

	case ActionUpdateAdmin:
		if action.Admin != nil {
			mergeAdmin(&next.Admin, action.Admin)
		}

	case ActionUpdateTeam:
		if action.Team != nil {
			mergeTeam(&next.Team, action.Team)
		}

	case ActionSetValidationErrors:
		next.Validation.Errors = append([]FieldMessage{}, action.Errors...)

	case ActionSetValidationWarnings:
		next.Validation.Warnings = append([]FieldMessage{}, action.Warnings...)

	case ActionCompleteStep:
		found := false
		for i := range next.Steps {
			if next.Steps[i].ID == action.StepID {
				next.Steps[i].Completed = true
				found = true
				break
			}
		}
		if !found {
			r.logger.Warnf("ignoring COMPLETE_STEP for unknown step %q", action.StepID)
			return next
		}

	case ActionCompleteOnboarding:
		next.Completed = true
		for i := range next.Steps {
			next.Steps[i].Completed = true
		}

	case ActionSubmitOnboarding:
		next.Submitted = true
		expiresAt := r.now().UTC().Add(submissionWindow)
		next.ExpiresAt = &expiresAt

	case ActionLoadSavedState:
		return r.loadSavedState(action.State)

	case ActionResetOnboarding:
		next = NewState()

	default:
		r.logger.Warnf("ignoring unknown onboarding action %q", action.Type)
		return next
	}

	next.LastUpdated = r.now().UTC()
	return next
}

// loadSavedState merges a previously persisted state over the canonical
// defaults. A saved payload with no steps falls back to the default step
// list, so the wizard can never end up stepless.
func (r *Reducer) loadSavedState(saved *State) *State {
	next := NewState()
	if saved == nil {
		return next
	}

	if len(saved.Steps) > 0 {
		next.Steps = append([]Step(nil), saved.Steps...)
	}
	next.CurrentStepIndex = clampStepIndex(saved.CurrentStepIndex, len(next.Steps))
	setCurrentStep(next, next.CurrentStepIndex)

	next.Organization = saved.Organization
	next.Admin = saved.Admin
	next.Team = Team{
		ExpectedUsers: saved.Team.ExpectedUsers,
		Departments:   append([]TeamEntry(nil), saved.Team.Departments...),
		ServiceTypes:  append([]TeamEntry(nil), saved.Team.ServiceTypes...),
	}
	if saved.Validation.Errors != nil {
		next.Validation.Errors = append([]FieldMessage{}, saved.Validation.Errors...)
	}
	if saved.Validation.Warnings != nil {
		next.Validation.Warnings = append([]FieldMessage{}, saved.Validation.Warnings...)
	}
	next.Completed = saved.Completed
	next.Submitted = saved.Submitted
	if saved.ExpiresAt != nil {
		expiresAt := *saved.ExpiresAt
		next.ExpiresAt = &expiresAt
	}
	if !saved.LastUpdated.IsZero() {
		next.LastUpdated = saved.LastUpdated
	}

	return next
}

// setCurrentStep enforces the invariant that exactly one step is current and
// that it matches CurrentStepIndex.
func setCurrentStep(s *State, index int) {
	s.CurrentStepIndex = index
	for i := range s.Steps {
		s.Steps[i].Current = i == index
	}
}

func clampStepIndex(index, steps int) int {
	if index < 0 {
		return 0
	}
	if index >= steps {
		return steps - 1
	}
	return index
}

func mergeOrganization(dst, src *Organization) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Industry != "" {
		dst.Industry = src.Industry
	}
	if src.Size != "" {
		dst.Size = src.Size
	}
	if src.Website != "" {
		dst.Website = src.Website
	}
}

func mergeAdmin(dst, src *Admin) {
	if src.FirstName != "" {
		dst.FirstName = src.FirstName
	}
	if src.LastName != "" {
		dst.LastName = src.LastName
	}
	if src.Email != "" {
		dst.Email = src.Email
	}
	if src.Password != "" {
		dst.Password = src.Password
		dst.PasswordSet = true
	}
	if src.Role != "" {
		dst.Role = src.Role
	}
	if src.PasswordSet {
		dst.PasswordSet = true
	}
}

func mergeTeam(dst, src *Team) {
	if src.ExpectedUsers != "" {
		dst.ExpectedUsers = src.ExpectedUsers
	}
	if src.Departments != nil {
		dst.Departments = append([]TeamEntry(nil), src.Departments...)
	}
	if src.ServiceTypes != nil {
		dst.ServiceTypes = append([]TeamEntry(nil), src.ServiceTypes...)
	}
}
