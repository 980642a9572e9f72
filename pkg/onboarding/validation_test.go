// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"testing"

	"github.com/shiftline/onboarding-service/internal/logging"
)

func hasFieldError(v Validation, field string) bool {
	for _, e := range v.Errors {
		if e.Field == field {
			return true
		}
	}
	return false
}

func hasFieldWarning(v Validation, field string) bool {
	for _, w := range v.Warnings {
		if w.Field == field {
			return true
		}
	}
	return false
}

func TestValidator_OrganizationStep(t *testing.T) {
	tests := []struct {
		name           string
		organization   Organization
		expectedFields []string
	}{
		{
			name:           "missing name",
			organization:   Organization{},
			expectedFields: []string{"name"},
		},
		{
			name:           "name too short",
			organization:   Organization{Name: "A"},
			expectedFields: []string{"name"},
		},
		{
			name:           "invalid website",
			organization:   Organization{Name: "Acme Co", Website: "not a url"},
			expectedFields: []string{"website"},
		},
		{
			name:           "valid",
			organization:   Organization{Name: "Acme Co", Website: "https://acme.example.com"},
			expectedFields: nil,
		},
		{
			name:           "whitespace only name",
			organization:   Organization{Name: "   "},
			expectedFields: []string{"name"},
		},
	}

	v := NewValidator(logging.NewNoopLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &State{Organization: tt.organization}

			result := v.ValidateStep(StepIDOrganization, state)

			if len(result.Errors) != len(tt.expectedFields) {
				t.Fatalf("expected %d errors, got %d: %v", len(tt.expectedFields), len(result.Errors), result.Errors)
			}
			for _, field := range tt.expectedFields {
				if !hasFieldError(result, field) {
					t.Errorf("expected error on field %q, got %v", field, result.Errors)
				}
			}
		})
	}
}

func TestValidator_AdminStep(t *testing.T) {
	tests := []struct {
		name           string
		admin          Admin
		expectedFields []string
	}{
		{
			name:           "empty form",
			admin:          Admin{},
			expectedFields: []string{"firstname", "lastname", "email", "password"},
		},
		{
			name:           "invalid email",
			admin:          Admin{FirstName: "Jo", LastName: "Doe", Email: "not-an-email", Password: "hunter22!"},
			expectedFields: []string{"email"},
		},
		{
			name:           "short password",
			admin:          Admin{FirstName: "Jo", LastName: "Doe", Email: "jo@acme.example.com", Password: "short"},
			expectedFields: []string{"password"},
		},
		{
			name:           "valid",
			admin:          Admin{FirstName: "Jo", LastName: "Doe", Email: "jo@acme.example.com", Password: "hunter22!"},
			expectedFields: nil,
		},
		{
			name: "password previously supplied",
			// the short-lived password copy may be gone after a reload, the
			// marker is enough
			admin:          Admin{FirstName: "Jo", LastName: "Doe", Email: "jo@acme.example.com", PasswordSet: true},
			expectedFields: nil,
		},
	}

	v := NewValidator(logging.NewNoopLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &State{Admin: tt.admin}

			result := v.ValidateStep(StepIDAdmin, state)

			if len(result.Errors) != len(tt.expectedFields) {
				t.Fatalf("expected %d errors, got %d: %v", len(tt.expectedFields), len(result.Errors), result.Errors)
			}
			for _, field := range tt.expectedFields {
				if !hasFieldError(result, field) {
					t.Errorf("expected error on field %q, got %v", field, result.Errors)
				}
			}
		})
	}
}

func TestValidator_TeamStepWarnings(t *testing.T) {
	v := NewValidator(logging.NewNoopLogger())

	result := v.ValidateStep(StepIDTeam, &State{})

	if len(result.Errors) != 0 {
		t.Errorf("team step should never produce errors, got %v", result.Errors)
	}
	if !hasFieldWarning(result, "departments") {
		t.Error("expected warning on departments")
	}
	if !hasFieldWarning(result, "service_types") {
		t.Error("expected warning on service_types")
	}

	full := &State{Team: Team{
		Departments:  []TeamEntry{{Name: "Plumbing"}},
		ServiceTypes: []TeamEntry{{Name: "Installation"}},
	}}

	result = v.ValidateStep(StepIDTeam, full)
	if len(result.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", result.Warnings)
	}
}

func TestValidator_UnknownStep(t *testing.T) {
	v := NewValidator(logging.NewNoopLogger())

	result := v.ValidateStep("bogus", &State{})

	if len(result.Errors) != 0 || len(result.Warnings) != 0 {
		t.Errorf("unknown step should validate clean, got %+v", result)
	}
}
