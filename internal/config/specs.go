// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	RedisAddr     string `envconfig:"redis_addr" default:"localhost:6379"`
	RedisPassword string `envconfig:"redis_password"`
	RedisDB       int    `envconfig:"redis_db" default:"0"`

	// OIDCIssuer is the issuer of the platform's identity provider. When empty
	// the server falls back to a noop verifier, which is only acceptable for
	// local development.
	OIDCIssuer      string   `envconfig:"oidc_issuer"`
	JWKSURL         string   `envconfig:"jwks_url"`
	AllowedSubjects []string `envconfig:"allowed_subjects"`
	RequiredScope   string   `envconfig:"required_scope" default:"onboarding:write"`

	OnboardingStateTTL    time.Duration `envconfig:"onboarding_state_ttl" default:"24h"`
	OnboardingPasswordTTL time.Duration `envconfig:"onboarding_password_ttl" default:"1h"`

	ProvisionRetryAttempts uint          `envconfig:"provision_retry_attempts" default:"3"`
	ProvisionRetryInterval time.Duration `envconfig:"provision_retry_interval" default:"500ms"`
	ProvisionTimeout       time.Duration `envconfig:"provision_timeout" default:"2m"`
}
