// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Tenant struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	Industry  string    `db:"industry"`
	Size      string    `db:"size"`
	Website   string    `db:"website"`
	Enabled   bool      `db:"enabled"`
	CreatedAt time.Time `db:"created_at"`
}

type Membership struct {
	ID          string    `db:"id"`
	TenantID    string    `db:"tenant_id"`
	PrincipalID string    `db:"principal_id"`
	Role        string    `db:"role"`
	CreatedAt   time.Time `db:"created_at"`
}

type Employee struct {
	ID          string    `db:"id"`
	TenantID    string    `db:"tenant_id"`
	PrincipalID string    `db:"principal_id"`
	Email       string    `db:"email"`
	FirstName   string    `db:"first_name"`
	LastName    string    `db:"last_name"`
	Role        string    `db:"role"`
	CreatedAt   time.Time `db:"created_at"`
}

type Department struct {
	ID          string    `db:"id"`
	TenantID    string    `db:"tenant_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

type ServiceType struct {
	ID          string    `db:"id"`
	TenantID    string    `db:"tenant_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// TenantSeed carries everything the atomic provisioning procedure needs to
// create a tenant together with its admin membership and employee record.
type TenantSeed struct {
	Name        string
	Slug        string
	Industry    string
	Size        string
	Website     string
	PrincipalID string
	Email       string
	FirstName   string
	LastName    string
}
