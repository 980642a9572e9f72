// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package statestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"github.com/shiftline/onboarding-service/internal/logging"
	"github.com/shiftline/onboarding-service/internal/monitoring"
	"github.com/shiftline/onboarding-service/internal/tracing"
	"github.com/shiftline/onboarding-service/pkg/onboarding"
)

const testPrincipalID = "principal-123"

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	store := NewStore(
		client,
		24*time.Hour,
		time.Hour,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	store.now = func() time.Time { return testNow }

	return store, mock
}

func statePayload(t *testing.T, mutate func(*onboarding.State)) string {
	t.Helper()

	state := onboarding.NewState()
	state.Organization.Name = "Acme Co"
	expiresAt := testNow.Add(time.Hour)
	state.ExpiresAt = &expiresAt
	if mutate != nil {
		mutate(state)
	}

	payload, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("failed to marshal state: %v", err)
	}

	return string(payload)
}

func TestStore_HasPendingOnboarding(t *testing.T) {
	stateKey := fmt.Sprintf(stateKeyFormat, testPrincipalID)
	passwordKey := fmt.Sprintf(passwordKeyFormat, testPrincipalID)

	tests := []struct {
		name      string
		setupMock func(t *testing.T, mock redismock.ClientMock)
		expected  bool
	}{
		{
			name: "no state",
			setupMock: func(t *testing.T, mock redismock.ClientMock) {
				mock.ExpectGet(stateKey).RedisNil()
			},
			expected: false,
		},
		{
			name: "submitted pending state",
			setupMock: func(t *testing.T, mock redismock.ClientMock) {
				mock.ExpectGet(stateKey).SetVal(statePayload(t, func(s *onboarding.State) {
					s.Submitted = true
				}))
			},
			expected: true,
		},
		{
			name: "saved but never submitted",
			setupMock: func(t *testing.T, mock redismock.ClientMock) {
				mock.ExpectGet(stateKey).SetVal(statePayload(t, nil))
			},
			expected: false,
		},
		{
			name: "submitted without organization name",
			setupMock: func(t *testing.T, mock redismock.ClientMock) {
				mock.ExpectGet(stateKey).SetVal(statePayload(t, func(s *onboarding.State) {
					s.Submitted = true
					s.Organization.Name = "   "
				}))
			},
			expected: false,
		},
		{
			name: "malformed state clears both keys",
			setupMock: func(t *testing.T, mock redismock.ClientMock) {
				mock.ExpectGet(stateKey).SetVal("{not json")
				mock.ExpectDel(stateKey, passwordKey).SetVal(2)
			},
			expected: false,
		},
		{
			name: "expired state clears both keys",
			setupMock: func(t *testing.T, mock redismock.ClientMock) {
				mock.ExpectGet(stateKey).SetVal(statePayload(t, func(s *onboarding.State) {
					s.Submitted = true
					expiresAt := testNow.Add(-time.Hour)
					s.ExpiresAt = &expiresAt
				}))
				mock.ExpectDel(stateKey, passwordKey).SetVal(2)
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newTestStore(t)
			tt.setupMock(t, mock)

			got := store.HasPendingOnboarding(context.Background(), testPrincipalID)

			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet redis expectations: %v", err)
			}
		})
	}
}

func TestStore_Load_SelfHealsUnusableState(t *testing.T) {
	stateKey := fmt.Sprintf(stateKeyFormat, testPrincipalID)
	passwordKey := fmt.Sprintf(passwordKeyFormat, testPrincipalID)

	store, mock := newTestStore(t)
	mock.ExpectGet(stateKey).SetVal("{not json")
	mock.ExpectDel(stateKey, passwordKey).SetVal(2)

	state, err := store.Load(context.Background(), testPrincipalID)

	if err != nil {
		t.Errorf("expected self-healing load to swallow the error, got %v", err)
	}
	if state != nil {
		t.Errorf("expected nil state, got %+v", state)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestStore_LoadPending_ReportsWrappedSentinel(t *testing.T) {
	stateKey := fmt.Sprintf(stateKeyFormat, testPrincipalID)
	passwordKey := fmt.Sprintf(passwordKeyFormat, testPrincipalID)

	store, mock := newTestStore(t)
	mock.ExpectGet(stateKey).SetVal("{not json")
	mock.ExpectDel(stateKey, passwordKey).SetVal(2)

	_, err := store.LoadPending(context.Background(), testPrincipalID)

	// the sentinel carries unmarshalling detail, callers must unwrap
	if !errors.Is(err, onboarding.ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestStore_Save_RedactsPassword(t *testing.T) {
	stateKey := fmt.Sprintf(stateKeyFormat, testPrincipalID)
	passwordKey := fmt.Sprintf(passwordKeyFormat, testPrincipalID)

	store, mock := newTestStore(t)

	mock.ExpectSet(passwordKey, "hunter22!", time.Hour).SetVal("OK")
	mock.Regexp().ExpectSet(stateKey, `.*\[PASSWORD_PROTECTED\].*`, 24*time.Hour).SetVal("OK")

	state := onboarding.NewState()
	state.Organization.Name = "Acme Co"
	state.Admin.Password = "hunter22!"

	if err := store.Save(context.Background(), testPrincipalID, state); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// the caller's copy stays untouched
	if state.Admin.Password != "hunter22!" {
		t.Errorf("save mutated the input state: %q", state.Admin.Password)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestStore_Load_RehydratesPassword(t *testing.T) {
	stateKey := fmt.Sprintf(stateKeyFormat, testPrincipalID)
	passwordKey := fmt.Sprintf(passwordKeyFormat, testPrincipalID)

	payload := statePayload(t, func(s *onboarding.State) {
		s.Admin.Password = onboarding.PasswordPlaceholder
		s.Admin.PasswordSet = true
	})

	tests := []struct {
		name             string
		setupMock        func(mock redismock.ClientMock)
		expectedPassword string
	}{
		{
			name: "password copy still alive",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectGet(stateKey).SetVal(payload)
				mock.ExpectGet(passwordKey).SetVal("hunter22!")
			},
			expectedPassword: "hunter22!",
		},
		{
			name: "password copy expired",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectGet(stateKey).SetVal(payload)
				mock.ExpectGet(passwordKey).RedisNil()
			},
			expectedPassword: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newTestStore(t)
			tt.setupMock(mock)

			state, err := store.Load(context.Background(), testPrincipalID)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			if state == nil {
				t.Fatal("expected a state")
			}

			if state.Admin.Password != tt.expectedPassword {
				t.Errorf("expected password %q, got %q", tt.expectedPassword, state.Admin.Password)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet redis expectations: %v", err)
			}
		})
	}
}
