// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTeamEntry_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected TeamEntry
		wantErr  bool
	}{
		{
			name:     "bare string",
			payload:  `"Plumbing"`,
			expected: TeamEntry{Name: "Plumbing"},
		},
		{
			name:     "object",
			payload:  `{"id":"dep-1","name":"Plumbing","description":"pipes"}`,
			expected: TeamEntry{ID: "dep-1", Name: "Plumbing", Description: "pipes"},
		},
		{
			name:     "object without optional fields",
			payload:  `{"name":"Sales"}`,
			expected: TeamEntry{Name: "Sales"},
		},
		{
			name:    "invalid payload",
			payload: `42`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entry TeamEntry
			err := json.Unmarshal([]byte(tt.payload), &entry)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if entry != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, entry)
			}
		})
	}
}

func TestTeam_UnmarshalMixedEntries(t *testing.T) {
	payload := `{"departments":["Plumbing",{"name":"Electrical","description":"wiring"}]}`

	var team Team
	if err := json.Unmarshal([]byte(payload), &team); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(team.Departments) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(team.Departments))
	}
	if team.Departments[0].Name != "Plumbing" {
		t.Errorf("expected first department Plumbing, got %q", team.Departments[0].Name)
	}
	if team.Departments[1].Description != "wiring" {
		t.Errorf("expected second department description, got %q", team.Departments[1].Description)
	}
}

func TestState_Expired(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name      string
		expiresAt *time.Time
		expected  bool
	}{
		{name: "no expiry never expires", expiresAt: nil, expected: false},
		{name: "future expiry", expiresAt: &future, expected: false},
		{name: "past expiry", expiresAt: &past, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &State{ExpiresAt: tt.expiresAt}
			if s.Expired(now) != tt.expected {
				t.Errorf("expected %v", tt.expected)
			}
		})
	}
}

func TestState_CloneIsIndependent(t *testing.T) {
	original := NewState()
	original.Team.Departments = []TeamEntry{{Name: "Plumbing"}}

	clone := original.Clone()
	clone.Steps[0].Completed = true
	clone.Team.Departments[0].Name = "Electrical"

	if original.Steps[0].Completed {
		t.Error("clone shares steps with original")
	}
	if original.Team.Departments[0].Name != "Plumbing" {
		t.Error("clone shares departments with original")
	}
}
