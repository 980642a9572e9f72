// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/shiftline/onboarding-service/internal/types"
)

type StorageInterface interface {
	// ProvisionTenant atomically creates the tenant row, the creator's admin
	// membership and the admin employee record in one transaction.
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
