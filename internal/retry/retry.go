// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package retry wraps remote calls in a bounded exponential backoff policy.
// Callers get explicit results back instead of driving retries through
// exceptions or sentinel loops.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/shiftline/onboarding-service/internal/logging"
)

type Config struct {
	MaxAttempts     uint
	InitialInterval time.Duration

	Logger logging.LoggerInterface
}

func NewConfig(maxAttempts uint, initialInterval time.Duration, logger logging.LoggerInterface) *Config {
	return &Config{
		MaxAttempts:     maxAttempts,
		InitialInterval: initialInterval,
		Logger:          logger,
	}
}

// Do runs fn until it succeeds or the attempt budget is exhausted, doubling
// the delay between attempts. Errors wrapped with Permanent stop immediately,
// as does context cancellation.
func Do[T any](ctx context.Context, cfg *Config, operation string, fn func() (T, error)) (T, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.InitialInterval
	bo.Multiplier = 2

	return backoff.Retry(
		ctx,
		fn,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(cfg.MaxAttempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			cfg.Logger.Warnf("%s failed, retrying in %s: %v", operation, next, err)
		}),
	)
}

// Permanent marks err as non-retryable.
func Permanent(err error) error {
	return backoff.Permanent(err)
}
