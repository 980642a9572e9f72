// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package statestore persists onboarding wizard state in Redis. Each
// principal gets two records: the durable state document, and a short-lived
// copy of the admin password that is never written into the durable record.
package statestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shiftline/onboarding-service/internal/logging"
	"github.com/shiftline/onboarding-service/internal/monitoring"
	"github.com/shiftline/onboarding-service/internal/tracing"
	"github.com/shiftline/onboarding-service/pkg/onboarding"
)

const (
	stateKeyFormat    = "onboarding:state:%s"
	passwordKeyFormat = "onboarding:password:%s"
)

type Store struct {
	client *redis.Client

	stateTTL    time.Duration
	passwordTTL time.Duration

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ onboarding.StateStoreInterface = (*Store)(nil)

// Save writes the state document, refreshing its expiry window. The admin
// password is redacted out of the durable record and stored separately with
// a much shorter TTL.
func (s *Store) Save(ctx context.Context, principalID string, state *onboarding.State) error {
	ctx, span := s.tracer.Start(ctx, "statestore.Store.Save")
	defer span.End()

	record := state.Clone()

	if record.Admin.Password != "" && record.Admin.Password != onboarding.PasswordPlaceholder {
		if err := s.client.Set(ctx, s.passwordKey(principalID), record.Admin.Password, s.passwordTTL).Err(); err != nil {
			return fmt.Errorf("failed to store password: %w", err)
		}
		record.Admin.PasswordSet = true
	}
	if record.Admin.PasswordSet {
		record.Admin.Password = onboarding.PasswordPlaceholder
	} else {
		record.Admin.Password = ""
	}

	expiresAt := s.now().UTC().Add(s.stateTTL)
	record.ExpiresAt = &expiresAt
	record.LastUpdated = s.now().UTC()

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal onboarding state: %w", err)
	}

	if err := s.client.Set(ctx, s.stateKey(principalID), payload, s.stateTTL).Err(); err != nil {
		return fmt.Errorf("failed to store onboarding state: %w", err)
	}

	return nil
}

// Load returns the persisted state, or nil when there is none. Malformed and
// expired records self-heal: both keys are cleared and nil is returned, so
// the caller starts the wizard over.
func (s *Store) Load(ctx context.Context, principalID string) (*onboarding.State, error) {
	ctx, span := s.tracer.Start(ctx, "statestore.Store.Load")
	defer span.End()

	state, err := s.load(ctx, principalID)
	if err != nil {
		if errors.Is(err, onboarding.ErrNoState) {
			return nil, nil
		}
		if errors.Is(err, onboarding.ErrInvalidFormat) || errors.Is(err, onboarding.ErrExpired) {
			s.logger.Warnf("discarding unusable onboarding state for %s: %v", principalID, err)
			if cErr := s.Clear(ctx, principalID); cErr != nil {
				s.logger.Warnf("failed to clear onboarding state for %s: %v", principalID, cErr)
			}
			return nil, nil
		}
		return nil, err
	}

	return state, nil
}

// LoadPending is the provisioning-side Load: instead of healing to nil it
// reports exactly why the state is unusable. Malformed and expired records
// are still cleared so the next wizard visit starts clean.
func (s *Store) LoadPending(ctx context.Context, principalID string) (*onboarding.State, error) {
	ctx, span := s.tracer.Start(ctx, "statestore.Store.LoadPending")
	defer span.End()

	state, err := s.load(ctx, principalID)
	if err != nil {
		if errors.Is(err, onboarding.ErrInvalidFormat) || errors.Is(err, onboarding.ErrExpired) {
			if cErr := s.Clear(ctx, principalID); cErr != nil {
				s.logger.Warnf("failed to clear onboarding state for %s: %v", principalID, cErr)
			}
		}
		return nil, err
	}

	return state, nil
}

// Clear removes both the state document and the short-lived password copy.
func (s *Store) Clear(ctx context.Context, principalID string) error {
	ctx, span := s.tracer.Start(ctx, "statestore.Store.Clear")
	defer span.End()

	if err := s.client.Del(ctx, s.stateKey(principalID), s.passwordKey(principalID)).Err(); err != nil {
		return fmt.Errorf("failed to clear onboarding state: %w", err)
	}

	return nil
}

// HasPendingOnboarding reports whether the principal has a submitted,
// unexpired state worth provisioning. Any failure reads as "no"; malformed
// and expired records are cleared the same way Load clears them, so every
// reader leaves the store in the same shape.
func (s *Store) HasPendingOnboarding(ctx context.Context, principalID string) bool {
	ctx, span := s.tracer.Start(ctx, "statestore.Store.HasPendingOnboarding")
	defer span.End()

	state, err := s.load(ctx, principalID)
	if err != nil {
		if errors.Is(err, onboarding.ErrInvalidFormat) || errors.Is(err, onboarding.ErrExpired) {
			s.logger.Warnf("discarding unusable onboarding state for %s: %v", principalID, err)
			if cErr := s.Clear(ctx, principalID); cErr != nil {
				s.logger.Warnf("failed to clear onboarding state for %s: %v", principalID, cErr)
			}
		}
		return false
	}

	return state.Submitted && strings.TrimSpace(state.Organization.Name) != ""
}

func (s *Store) load(ctx context.Context, principalID string) (*onboarding.State, error) {
	payload, err := s.client.Get(ctx, s.stateKey(principalID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, onboarding.ErrNoState
		}
		return nil, fmt.Errorf("failed to read onboarding state: %w", err)
	}

	var state onboarding.State
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", onboarding.ErrInvalidFormat, err)
	}

	if state.Expired(s.now().UTC()) {
		return nil, onboarding.ErrExpired
	}

	if state.Admin.PasswordSet {
		s.rehydratePassword(ctx, principalID, &state)
	}

	return &state, nil
}

// rehydratePassword swaps the placeholder back for the real password. The
// short-lived copy expiring before the state does is legitimate; the
// placeholder is removed so it never masquerades as a real password.
func (s *Store) rehydratePassword(ctx context.Context, principalID string, state *onboarding.State) {
	password, err := s.client.Get(ctx, s.passwordKey(principalID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warnf("failed to read password for %s: %v", principalID, err)
		}
		state.Admin.Password = ""
		return
	}

	state.Admin.Password = password
}

func (s *Store) stateKey(principalID string) string {
	return fmt.Sprintf(stateKeyFormat, principalID)
}

func (s *Store) passwordKey(principalID string) string {
	return fmt.Sprintf(passwordKeyFormat, principalID)
}

func NewStore(
	client *redis.Client,
	stateTTL time.Duration,
	passwordTTL time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Store {
	return &Store{
		client:      client,
		stateTTL:    stateTTL,
		passwordTTL: passwordTTL,
		now:         time.Now,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}
