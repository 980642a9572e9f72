// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/shiftline/onboarding-service/internal/db"
	"github.com/shiftline/onboarding-service/internal/logging"
	"github.com/shiftline/onboarding-service/internal/monitoring"
	"github.com/shiftline/onboarding-service/internal/tracing"
	"github.com/shiftline/onboarding-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// ProvisionTenant creates the tenant, the creator's admin membership and the
// admin employee record in a single transaction. A tenant without a membership
// would be unreachable by anyone, so partial creation is never committed.
func (s *Storage) ProvisionTenant(ctx context.Context, seed *types.TenantSeed) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ProvisionTenant")
	defer span.End()

	var tenant *types.Tenant

	err := s.db.WithTx(ctx, func(txCtx context.Context) error {
		t, err := s.CreateTenant(txCtx, &types.Tenant{
			Name:     seed.Name,
			Slug:     seed.Slug,
			Industry: seed.Industry,
			Size:     seed.Size,
			Website:  seed.Website,
			Enabled:  true,
		})
		if err != nil {
			return err
		}

		if _, err := s.AddMember(txCtx, t.ID, seed.PrincipalID, "admin"); err != nil {
			return err
		}

		if _, err := s.CreateEmployee(txCtx, &types.Employee{
			TenantID:    t.ID,
			PrincipalID: seed.PrincipalID,
			Email:       seed.Email,
			FirstName:   seed.FirstName,
			LastName:    seed.LastName,
			Role:        "admin",
		}); err != nil {
			return err
		}

		tenant = t
		return nil
	})

	if err != nil {
		return nil, err
	}

	return tenant, nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	var newTenant types.Tenant
	err = s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "slug", "industry", "size", "website", "enabled").
		Values(id.String(), t.Name, t.Slug, t.Industry, t.Size, t.Website, t.Enabled).
		Suffix("RETURNING id, name, slug, industry, size, website, enabled, created_at").
		QueryRowContext(ctx).
		Scan(&newTenant.ID, &newTenant.Name, &newTenant.Slug, &newTenant.Industry, &newTenant.Size, &newTenant.Website, &newTenant.Enabled, &newTenant.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return &newTenant, nil
}

// DeleteTenant removes the tenant row. Memberships, employees, departments and
// service types go with it via ON DELETE CASCADE, which is what the
// provisioning workflow relies on when compensating a failed run.
func (s *Storage) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenant")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("tenants").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}
	return nil
}

func (s *Storage) AddMember(ctx context.Context, tenantID, principalID, role string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate membership ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "tenant_id", "principal_id", "role").
		Values(id.String(), tenantID, principalID, role).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return "", ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return "", ErrForeignKeyViolation
		}
		return "", fmt.Errorf("failed to add member: %w", err)
	}

	return id.String(), nil
}

func (s *Storage) ListMembershipsByPrincipal(ctx context.Context, principalID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembershipsByPrincipal")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "tenant_id", "principal_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"principal_id": principalID})

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var memberships []*types.Membership
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.ID, &m.TenantID, &m.PrincipalID, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return memberships, nil
}

func (s *Storage) CreateEmployee(ctx context.Context, e *types.Employee) (*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateEmployee")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate employee ID: %w", err)
	}

	var newEmployee types.Employee
	err = s.db.Statement(ctx).
		Insert("employees").
		Columns("id", "tenant_id", "principal_id", "email", "first_name", "last_name", "role").
		Values(id.String(), e.TenantID, e.PrincipalID, e.Email, e.FirstName, e.LastName, e.Role).
		Suffix("RETURNING id, tenant_id, principal_id, email, first_name, last_name, role, created_at").
		QueryRowContext(ctx).
		Scan(&newEmployee.ID, &newEmployee.TenantID, &newEmployee.PrincipalID, &newEmployee.Email, &newEmployee.FirstName, &newEmployee.LastName, &newEmployee.Role, &newEmployee.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert employee: %w", err)
	}

	return &newEmployee, nil
}

func (s *Storage) ListDepartmentNames(ctx context.Context, tenantID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDepartmentNames")
	defer span.End()

	return s.listNames(ctx, "departments", tenantID)
}

func (s *Storage) CreateDepartments(ctx context.Context, tenantID string, departments []*types.Department) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateDepartments")
	defer span.End()

	if len(departments) == 0 {
		return nil
	}

	query := s.db.Statement(ctx).
		Insert("departments").
		Columns("id", "tenant_id", "name", "description")

	for _, d := range departments {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate department ID: %w", err)
		}
		query = query.Values(id.String(), tenantID, d.Name, d.Description)
	}

	if _, err := query.ExecContext(ctx); err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert departments: %w", err)
	}

	return nil
}

func (s *Storage) ListServiceTypeNames(ctx context.Context, tenantID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListServiceTypeNames")
	defer span.End()

	return s.listNames(ctx, "service_types", tenantID)
}

func (s *Storage) CreateServiceTypes(ctx context.Context, tenantID string, serviceTypes []*types.ServiceType) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateServiceTypes")
	defer span.End()

	if len(serviceTypes) == 0 {
		return nil
	}

	query := s.db.Statement(ctx).
		Insert("service_types").
		Columns("id", "tenant_id", "name", "description")

	for _, st := range serviceTypes {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate service type ID: %w", err)
		}
		query = query.Values(id.String(), tenantID, st.Name, st.Description)
	}

	if _, err := query.ExecContext(ctx); err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert service types: %w", err)
	}

	return nil
}

func (s *Storage) listNames(ctx context.Context, table, tenantID string) ([]string, error) {
	rows, err := s.db.Statement(ctx).
		Select("name").
		From(table).
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return names, nil
}
