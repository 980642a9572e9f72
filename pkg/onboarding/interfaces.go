// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"

	"github.com/shiftline/onboarding-service/internal/types"
	"github.com/shiftline/onboarding-service/pkg/authentication"
)

type ServiceInterface interface {
	GetState(ctx context.Context, principalID string) (*State, error)
	Dispatch(ctx context.Context, principalID string, action Action) (*State, error)
	ClearState(ctx context.Context, principalID string) error
	Provision(ctx context.Context, principal *authentication.Principal) *ProvisionResult
	Reconcile(ctx context.Context, principal *authentication.Principal) (*SessionResolution, error)
}

type StorageInterface interface {
	ProvisionTenant(ctx context.Context, seed *types.TenantSeed) (*types.Tenant, error)
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error
	AddMember(ctx context.Context, tenantID, principalID, role string) (string, error)
	ListMembershipsByPrincipal(ctx context.Context, principalID string) ([]*types.Membership, error)
	CreateEmployee(ctx context.Context, e *types.Employee) (*types.Employee, error)
	ListDepartmentNames(ctx context.Context, tenantID string) ([]string, error)
	CreateDepartments(ctx context.Context, tenantID string, departments []*types.Department) error
	ListServiceTypeNames(ctx context.Context, tenantID string) ([]string, error)
	CreateServiceTypes(ctx context.Context, tenantID string, serviceTypes []*types.ServiceType) error
}

// StateStoreInterface is the durable + short-lived wizard state store.
type StateStoreInterface interface {
	// Save persists the state, redacting the admin password out of the
	// durable record, and refreshes the expiry window.
	Save(ctx context.Context, principalID string, state *State) error
	// Load returns the persisted state, or nil when none exists. Malformed
	// and expired payloads self-heal: both stores are cleared and nil is
	// returned.
	Load(ctx context.Context, principalID string) (*State, error)
	// LoadPending is Load for the provisioning workflow: instead of healing
	// to nil it reports ErrNoState, ErrInvalidFormat or ErrExpired.
	LoadPending(ctx context.Context, principalID string) (*State, error)
	Clear(ctx context.Context, principalID string) error
	HasPendingOnboarding(ctx context.Context, principalID string) bool
}
