// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/shiftline/onboarding-service/internal/logging"
	"github.com/shiftline/onboarding-service/internal/monitoring"
	"github.com/shiftline/onboarding-service/internal/retry"
	"github.com/shiftline/onboarding-service/internal/storage"
	"github.com/shiftline/onboarding-service/internal/tracing"
	"github.com/shiftline/onboarding-service/internal/types"
	"github.com/shiftline/onboarding-service/pkg/authentication"
)

// DefaultProvisionTimeout bounds a whole provisioning run, retries included.
const DefaultProvisionTimeout = 2 * time.Minute

// Routes the first-login reconciliation can resolve to.
const (
	RouteDashboard    = "dashboard"
	RouteProvisioning = "provisioning"
	RouteOnboarding   = "onboarding"
)

// Provisioning phases shown while the workflow is still running.
const (
	PhaseCreatingAccount      = "creating_account"
	PhaseCreatingDepartments  = "creating_departments"
	PhaseCreatingServiceTypes = "creating_service_types"
	PhaseFinalizing           = "finalizing"
)

// ProvisionResult reports the outcome of a provisioning run. Step is always
// set: on success it is the completed stage, on failure the stage that failed,
// so a retry can show where it left off.
type ProvisionResult struct {
	Success        bool      `json:"success"`
	OrganizationID string    `json:"organization_id,omitempty"`
	Error          ErrorKind `json:"error,omitempty"`
	Step           string    `json:"step"`
}

// SessionResolution tells the caller where a freshly authenticated principal
// belongs.
type SessionResolution struct {
	Route          string    `json:"route"`
	OrganizationID string    `json:"organization_id,omitempty"`
	Phase          string    `json:"phase,omitempty"`
	Error          ErrorKind `json:"error,omitempty"`
}

type Service struct {
	storage StorageInterface
	states  StateStoreInterface

	reducer   *Reducer
	validator *Validator

	retryCfg         *retry.Config
	provisionTimeout time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

// GetState returns the principal's wizard state, normalized through the
// reducer so defaults are filled in even for first-time visitors.
func (s *Service) GetState(ctx context.Context, principalID string) (*State, error) {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.GetState")
	defer span.End()

	saved, err := s.states.Load(ctx, principalID)
	if err != nil {
		return nil, err
	}

	return s.reducer.Reduce(NewState(), Action{Type: ActionLoadSavedState, State: saved}), nil
}

// Dispatch applies a single action to the principal's state and persists the
// result. Update actions additionally re-validate the affected step; the
// validation outcome is stored on the state but never blocks persistence.
func (s *Service) Dispatch(ctx context.Context, principalID string, action Action) (*State, error) {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.Dispatch")
	defer span.End()

	state, err := s.GetState(ctx, principalID)
	if err != nil {
		return nil, err
	}

	next := s.reducer.Reduce(state, action)

	switch action.Type {
	case ActionUpdateOrganization:
		next.Validation = s.validator.ValidateStep(StepIDOrganization, next)
	case ActionUpdateAdmin:
		next.Validation = s.validator.ValidateStep(StepIDAdmin, next)
	case ActionUpdateTeam:
		next.Validation = s.validator.ValidateStep(StepIDTeam, next)
	}

	if err := s.states.Save(ctx, principalID, next); err != nil {
		return nil, err
	}

	return next, nil
}

// ClearState drops the principal's wizard state from both stores.
func (s *Service) ClearState(ctx context.Context, principalID string) error {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.ClearState")
	defer span.End()

	return s.states.Clear(ctx, principalID)
}

// Provision turns a submitted wizard state into a tenant with an admin
// membership, an admin employee record, and seeded departments and service
// types. Every stage retries transient failures; the whole run is bounded by
// the provisioning timeout.
func (s *Service) Provision(ctx context.Context, principal *authentication.Principal) *ProvisionResult {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.Provision")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, s.provisionTimeout)
	defer cancel()

	state, err := s.states.LoadPending(ctx, principal.ID)
	if err != nil {
		return &ProvisionResult{Error: stateErrorKind(err), Step: ProvisionStepState}
	}

	if strings.TrimSpace(state.Organization.Name) == "" {
		return &ProvisionResult{Error: ErrorMissingOrganizationName, Step: ProvisionStepState}
	}

	// idempotency: a principal that already belongs to a tenant must not get
	// a second one, however the first attempt ended
	memberships, err := retry.Do(ctx, s.retryCfg, "membership check", func() ([]*types.Membership, error) {
		return s.storage.ListMembershipsByPrincipal(ctx, principal.ID)
	})
	if err != nil {
		s.logger.Errorf("membership check for %s failed: %v", principal.ID, err)
		return &ProvisionResult{Error: ErrorMembershipCheckFailed, Step: ProvisionStepMembershipCheck}
	}
	if len(memberships) > 0 {
		return s.finishExisting(ctx, principal.ID, memberships[0].TenantID)
	}

	tenant, result := s.createOrganization(ctx, principal, state)
	if result != nil {
		return result
	}

	// seeding is best effort: a tenant with no departments is usable, a
	// failed tenant is not
	s.seedDepartments(ctx, tenant.ID, state.Team.Departments)
	s.seedServiceTypes(ctx, tenant.ID, state.Team.ServiceTypes)

	if err := s.states.Clear(ctx, principal.ID); err != nil {
		s.logger.Warnf("failed to clear onboarding state for %s: %v", principal.ID, err)
	}

	s.logger.Infof("provisioned tenant %s for principal %s", tenant.ID, principal.ID)
	return &ProvisionResult{Success: true, OrganizationID: tenant.ID, Step: ProvisionStepCompleted}
}

// Reconcile resolves where a just-authenticated principal should land:
// membership wins over everything, a pending submission triggers
// provisioning, and anyone else goes back to the wizard.
func (s *Service) Reconcile(ctx context.Context, principal *authentication.Principal) (*SessionResolution, error) {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.Reconcile")
	defer span.End()

	memberships, err := retry.Do(ctx, s.retryCfg, "membership check", func() ([]*types.Membership, error) {
		return s.storage.ListMembershipsByPrincipal(ctx, principal.ID)
	})
	if err != nil {
		return nil, err
	}

	if len(memberships) > 0 {
		// a leftover wizard state for an already-provisioned principal is
		// stale and would only replay provisioning on the next login
		if err := s.states.Clear(ctx, principal.ID); err != nil {
			s.logger.Warnf("failed to clear stale onboarding state for %s: %v", principal.ID, err)
		}
		return &SessionResolution{Route: RouteDashboard, OrganizationID: memberships[0].TenantID}, nil
	}

	if s.states.HasPendingOnboarding(ctx, principal.ID) {
		result := s.Provision(ctx, principal)
		if result.Success {
			return &SessionResolution{Route: RouteDashboard, OrganizationID: result.OrganizationID}, nil
		}
		return &SessionResolution{
			Route: RouteProvisioning,
			Phase: phaseForStep(result.Step),
			Error: result.Error,
		}, nil
	}

	return &SessionResolution{Route: RouteOnboarding}, nil
}

// finishExisting closes out a provisioning run against a tenant the principal
// already belongs to.
func (s *Service) finishExisting(ctx context.Context, principalID, tenantID string) *ProvisionResult {
	if err := s.states.Clear(ctx, principalID); err != nil {
		s.logger.Warnf("failed to clear onboarding state for %s: %v", principalID, err)
	}

	s.logger.Infof("principal %s already belongs to tenant %s, skipping provisioning", principalID, tenantID)
	return &ProvisionResult{Success: true, OrganizationID: tenantID, Step: ProvisionStepExistingOrganization}
}

// createOrganization creates the tenant, admin membership and admin employee.
// It tries the single-transaction path first and falls back to sequential
// creation with compensation when the transaction keeps failing.
func (s *Service) createOrganization(ctx context.Context, principal *authentication.Principal, state *State) (*types.Tenant, *ProvisionResult) {
	seed := s.tenantSeed(principal, state)

	tenant, err := retry.Do(ctx, s.retryCfg, "tenant provisioning", func() (*types.Tenant, error) {
		t, err := s.storage.ProvisionTenant(ctx, seed)
		if storage.IsDuplicateKeyError(err) {
			return nil, retry.Permanent(err)
		}
		return t, err
	})
	if err == nil {
		return tenant, nil
	}

	if storage.IsDuplicateKeyError(err) {
		// lost a race with a concurrent provisioning run for the same
		// principal; the membership the winner created decides the outcome
		memberships, mErr := s.storage.ListMembershipsByPrincipal(ctx, principal.ID)
		if mErr == nil && len(memberships) > 0 {
			return nil, s.finishExisting(ctx, principal.ID, memberships[0].TenantID)
		}
		s.logger.Errorf("duplicate key during provisioning for %s but no membership found: %v", principal.ID, err)
		return nil, &ProvisionResult{Error: ErrorOrganizationCreationFailed, Step: ProvisionStepOrganization}
	}

	s.logger.Warnf("atomic tenant provisioning for %s failed, falling back to sequential creation: %v", principal.ID, err)
	return s.createOrganizationSequential(ctx, seed)
}

// createOrganizationSequential is the degraded path: create the tenant, then
// the membership, then the employee record. A failed membership leaves an
// orphan tenant, so it is compensated by deleting the tenant again. A failed
// employee record is tolerated and reconciled on first login.
func (s *Service) createOrganizationSequential(ctx context.Context, seed *types.TenantSeed) (*types.Tenant, *ProvisionResult) {
	tenant, err := retry.Do(ctx, s.retryCfg, "tenant creation", func() (*types.Tenant, error) {
		return s.storage.CreateTenant(ctx, &types.Tenant{
			Name:     seed.Name,
			Slug:     seed.Slug,
			Industry: seed.Industry,
			Size:     seed.Size,
			Website:  seed.Website,
			Enabled:  true,
		})
	})
	if err != nil {
		s.logger.Errorf("tenant creation for %s failed: %v", seed.PrincipalID, err)
		return nil, &ProvisionResult{Error: ErrorOrganizationCreationFailed, Step: ProvisionStepOrganization}
	}

	_, err = retry.Do(ctx, s.retryCfg, "membership creation", func() (string, error) {
		return s.storage.AddMember(ctx, tenant.ID, seed.PrincipalID, "admin")
	})
	if err != nil {
		s.logger.Errorf("membership creation for %s failed, deleting tenant %s: %v", seed.PrincipalID, tenant.ID, err)
		if dErr := s.storage.DeleteTenant(ctx, tenant.ID); dErr != nil {
			s.logger.Errorf("failed to delete orphan tenant %s: %v", tenant.ID, dErr)
		}
		return nil, &ProvisionResult{Error: ErrorOrganizationCreationFailed, Step: ProvisionStepOrganization}
	}

	_, err = retry.Do(ctx, s.retryCfg, "employee creation", func() (*types.Employee, error) {
		return s.storage.CreateEmployee(ctx, &types.Employee{
			TenantID:    tenant.ID,
			PrincipalID: seed.PrincipalID,
			Email:       seed.Email,
			FirstName:   seed.FirstName,
			LastName:    seed.LastName,
			Role:        "admin",
		})
	})
	if err != nil {
		// the membership already grants access, the employee record can be
		// backfilled later
		s.logger.Errorf("employee creation for %s in tenant %s failed: %v", seed.PrincipalID, tenant.ID, err)
	}

	return tenant, nil
}

func (s *Service) tenantSeed(principal *authentication.Principal, state *State) *types.TenantSeed {
	seed := &types.TenantSeed{
		Name:        strings.TrimSpace(state.Organization.Name),
		Industry:    state.Organization.Industry,
		Size:        state.Organization.Size,
		Website:     strings.TrimSpace(state.Organization.Website),
		PrincipalID: principal.ID,
		Email:       strings.TrimSpace(state.Admin.Email),
		FirstName:   strings.TrimSpace(state.Admin.FirstName),
		LastName:    strings.TrimSpace(state.Admin.LastName),
	}

	// the wizard may not have collected admin details, the token claims are
	// the fallback
	if seed.Email == "" {
		seed.Email = principal.Email
	}
	if seed.FirstName == "" {
		seed.FirstName = principal.FirstName
	}
	if seed.LastName == "" {
		seed.LastName = principal.LastName
	}

	seed.Slug = fmt.Sprintf("%s-%d", slug.Make(seed.Name), s.reducer.now().Unix())

	return seed
}

func (s *Service) seedDepartments(ctx context.Context, tenantID string, entries []TeamEntry) {
	if len(entries) == 0 {
		entries = DefaultDepartments()
	}

	existing, err := retry.Do(ctx, s.retryCfg, "department listing", func() ([]string, error) {
		return s.storage.ListDepartmentNames(ctx, tenantID)
	})
	if err != nil {
		s.logger.Errorf("failed to list departments for tenant %s, skipping seeding: %v", tenantID, err)
		return
	}

	departments := make([]*types.Department, 0, len(entries))
	for _, e := range dedupeEntries(entries, existing) {
		departments = append(departments, &types.Department{
			TenantID:    tenantID,
			Name:        e.Name,
			Description: e.Description,
		})
	}
	if len(departments) == 0 {
		return
	}

	_, err = retry.Do(ctx, s.retryCfg, "department seeding", func() (struct{}, error) {
		return struct{}{}, s.storage.CreateDepartments(ctx, tenantID, departments)
	})
	if err != nil {
		s.logger.Errorf("failed to seed departments for tenant %s: %v", tenantID, err)
	}
}

func (s *Service) seedServiceTypes(ctx context.Context, tenantID string, entries []TeamEntry) {
	if len(entries) == 0 {
		entries = DefaultServiceTypes()
	}

	existing, err := retry.Do(ctx, s.retryCfg, "service type listing", func() ([]string, error) {
		return s.storage.ListServiceTypeNames(ctx, tenantID)
	})
	if err != nil {
		s.logger.Errorf("failed to list service types for tenant %s, skipping seeding: %v", tenantID, err)
		return
	}

	serviceTypes := make([]*types.ServiceType, 0, len(entries))
	for _, e := range dedupeEntries(entries, existing) {
		serviceTypes = append(serviceTypes, &types.ServiceType{
			TenantID:    tenantID,
			Name:        e.Name,
			Description: e.Description,
		})
	}
	if len(serviceTypes) == 0 {
		return
	}

	_, err = retry.Do(ctx, s.retryCfg, "service type seeding", func() (struct{}, error) {
		return struct{}{}, s.storage.CreateServiceTypes(ctx, tenantID, serviceTypes)
	})
	if err != nil {
		s.logger.Errorf("failed to seed service types for tenant %s: %v", tenantID, err)
	}
}

// dedupeEntries drops entries whose name already exists, case insensitively,
// and entries duplicated within the input itself.
func dedupeEntries(entries []TeamEntry, existing []string) []TeamEntry {
	seen := make(map[string]bool, len(existing))
	for _, name := range existing {
		seen[strings.ToLower(strings.TrimSpace(name))] = true
	}

	result := make([]TeamEntry, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		e.Name = name
		result = append(result, e)
	}

	return result
}

// stateErrorKind maps a state-store failure to the wizard's error taxonomy.
// The sentinels arrive wrapped with detail, so they are matched with
// errors.Is; anything else is a store read failure, not a missing state.
func stateErrorKind(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrNoState):
		return ErrorNoState
	case errors.Is(err, ErrInvalidFormat):
		return ErrorInvalidFormat
	case errors.Is(err, ErrExpired):
		return ErrorExpired
	default:
		return ErrorStateReadFailed
	}
}

// phaseForStep maps a provisioning stage to the progress phase shown while
// the workflow runs.
func phaseForStep(step string) string {
	switch step {
	case ProvisionStepDepartments:
		return PhaseCreatingDepartments
	case ProvisionStepServiceTypes:
		return PhaseCreatingServiceTypes
	case ProvisionStepCompleted, ProvisionStepExistingOrganization:
		return PhaseFinalizing
	default:
		return PhaseCreatingAccount
	}
}

func NewService(
	storage StorageInterface,
	states StateStoreInterface,
	retryCfg *retry.Config,
	provisionTimeout time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	if provisionTimeout <= 0 {
		provisionTimeout = DefaultProvisionTimeout
	}

	return &Service{
		storage:          storage,
		states:           states,
		reducer:          NewReducer(logger),
		validator:        NewValidator(logger),
		retryCfg:         retryCfg,
		provisionTimeout: provisionTimeout,
		tracer:           tracer,
		monitor:          monitor,
		logger:           logger,
	}
}
