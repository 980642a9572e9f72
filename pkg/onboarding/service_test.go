// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/shiftline/onboarding-service/internal/logging"
	"github.com/shiftline/onboarding-service/internal/retry"
	"github.com/shiftline/onboarding-service/internal/storage"
	"github.com/shiftline/onboarding-service/internal/types"
	"github.com/shiftline/onboarding-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package onboarding -destination ./mock_onboarding.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package onboarding -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package onboarding -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package onboarding -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

var testPrincipal = &authentication.Principal{
	ID:        "principal-123",
	Email:     "jo@acme.example.com",
	FirstName: "Jo",
	LastName:  "Doe",
}

func newTestService(t *testing.T, ctrl *gomock.Controller) (*Service, *MockStorageInterface, *MockStateStoreInterface) {
	t.Helper()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStates := NewMockStateStoreInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	logger := logging.NewNoopLogger()

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, name string) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()

	s := NewService(
		mockStorage,
		mockStates,
		retry.NewConfig(2, time.Millisecond, logger),
		time.Minute,
		mockTracer,
		mockMonitor,
		logger,
	)
	s.reducer.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }

	return s, mockStorage, mockStates
}

func submittedState() *State {
	s := NewState()
	s.Organization = Organization{Name: "Acme Co", Industry: "field services"}
	s.Admin = Admin{FirstName: "Jo", LastName: "Doe", Email: "jo@acme.example.com"}
	s.Submitted = true
	return s
}

func TestService_Provision_StateErrors(t *testing.T) {
	tests := []struct {
		name          string
		loadErr       error
		expectedError ErrorKind
	}{
		{name: "no state", loadErr: ErrNoState, expectedError: ErrorNoState},
		{name: "malformed state", loadErr: ErrInvalidFormat, expectedError: ErrorInvalidFormat},
		{name: "expired state", loadErr: ErrExpired, expectedError: ErrorExpired},
		// the store wraps its sentinels with detail about what went wrong
		{
			name:          "wrapped malformed state",
			loadErr:       fmt.Errorf("%w: unexpected end of JSON input", ErrInvalidFormat),
			expectedError: ErrorInvalidFormat,
		},
		{
			name:          "wrapped expired state",
			loadErr:       fmt.Errorf("%w: expired 2026-07-01T00:00:00Z", ErrExpired),
			expectedError: ErrorExpired,
		},
		{
			name:          "store read failure",
			loadErr:       errors.New("dial tcp 127.0.0.1:6379: connection refused"),
			expectedError: ErrorStateReadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, _, mockStates := newTestService(t, ctrl)
			mockStates.EXPECT().LoadPending(gomock.Any(), testPrincipal.ID).Return(nil, tt.loadErr)

			result := s.Provision(context.Background(), testPrincipal)

			if result.Success {
				t.Error("expected failure")
			}
			if result.Error != tt.expectedError {
				t.Errorf("expected error %q, got %q", tt.expectedError, result.Error)
			}
			if result.Step != ProvisionStepState {
				t.Errorf("expected step %q, got %q", ProvisionStepState, result.Step)
			}
		})
	}
}

func TestService_Provision_MissingOrganizationName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, mockStates := newTestService(t, ctrl)

	state := submittedState()
	state.Organization.Name = "   "
	mockStates.EXPECT().LoadPending(gomock.Any(), testPrincipal.ID).Return(state, nil)

	result := s.Provision(context.Background(), testPrincipal)

	if result.Error != ErrorMissingOrganizationName {
		t.Errorf("expected %q, got %q", ErrorMissingOrganizationName, result.Error)
	}
}

func TestService_Provision_ExistingMembershipShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, mockStates := newTestService(t, ctrl)

	mockStates.EXPECT().LoadPending(gomock.Any(), testPrincipal.ID).Return(submittedState(), nil)
	mockStorage.EXPECT().ListMembershipsByPrincipal(gomock.Any(), testPrincipal.ID).
		Return([]*types.Membership{{TenantID: "tenant-1", PrincipalID: testPrincipal.ID, Role: "admin"}}, nil)
	mockStates.EXPECT().Clear(gomock.Any(), testPrincipal.ID).Return(nil)

	result := s.Provision(context.Background(), testPrincipal)

	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if result.OrganizationID != "tenant-1" {
		t.Errorf("expected organization tenant-1, got %q", result.OrganizationID)
	}
	if result.Step != ProvisionStepExistingOrganization {
		t.Errorf("expected step %q, got %q", ProvisionStepExistingOrganization, result.Step)
	}
}

func TestService_Provision_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, mockStates := newTestService(t, ctrl)

	tenant := &types.Tenant{ID: "tenant-1", Name: "Acme Co", Slug: "acme-co-1785931200"}
	state := submittedState()
	state.Team.Departments = []TeamEntry{{Name: "Plumbing"}, {Name: "plumbing"}, {Name: "Electrical"}}
	state.Team.ServiceTypes = []TeamEntry{{Name: "Installation"}}

	mockStates.EXPECT().LoadPending(gomock.Any(), testPrincipal.ID).Return(state, nil)
	mockStorage.EXPECT().ListMembershipsByPrincipal(gomock.Any(), testPrincipal.ID).Return(nil, nil)
	mockStorage.EXPECT().ProvisionTenant(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, seed *types.TenantSeed) (*types.Tenant, error) {
			if seed.Name != "Acme Co" {
				return nil, errors.New("wrong tenant name")
			}
			if !strings.HasPrefix(seed.Slug, "acme-co-") {
				return nil, errors.New("slug is not derived from the organization name")
			}
			if seed.PrincipalID != testPrincipal.ID {
				return nil, errors.New("wrong principal")
			}
			return tenant, nil
		})
	mockStorage.EXPECT().ListDepartmentNames(gomock.Any(), tenant.ID).Return([]string{"PLUMBING"}, nil)
	mockStorage.EXPECT().CreateDepartments(gomock.Any(), tenant.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, departments []*types.Department) error {
			// "Plumbing" and "plumbing" both collide with the existing
			// "PLUMBING" department
			if len(departments) != 1 || departments[0].Name != "Electrical" {
				return errors.New("departments were not deduplicated")
			}
			return nil
		})
	mockStorage.EXPECT().ListServiceTypeNames(gomock.Any(), tenant.ID).Return(nil, nil)
	mockStorage.EXPECT().CreateServiceTypes(gomock.Any(), tenant.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, serviceTypes []*types.ServiceType) error {
			if len(serviceTypes) != 1 || serviceTypes[0].Name != "Installation" {
				return errors.New("unexpected service types")
			}
			return nil
		})
	mockStates.EXPECT().Clear(gomock.Any(), testPrincipal.ID).Return(nil)

	result := s.Provision(context.Background(), testPrincipal)

	if !result.Success {
		t.Fatalf("expected success, got error %q at step %q", result.Error, result.Step)
	}
	if result.OrganizationID != tenant.ID {
		t.Errorf("expected organization %q, got %q", tenant.ID, result.OrganizationID)
	}
	if result.Step != ProvisionStepCompleted {
		t.Errorf("expected step %q, got %q", ProvisionStepCompleted, result.Step)
	}
}

func TestService_Provision_DefaultsWhenTeamEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, mockStates := newTestService(t, ctrl)

	tenant := &types.Tenant{ID: "tenant-1"}

	mockStates.EXPECT().LoadPending(gomock.Any(), testPrincipal.ID).Return(submittedState(), nil)
	mockStorage.EXPECT().ListMembershipsByPrincipal(gomock.Any(), testPrincipal.ID).Return(nil, nil)
	mockStorage.EXPECT().ProvisionTenant(gomock.Any(), gomock.Any()).Return(tenant, nil)
	mockStorage.EXPECT().ListDepartmentNames(gomock.Any(), tenant.ID).Return(nil, nil)
	mockStorage.EXPECT().CreateDepartments(gomock.Any(), tenant.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, departments []*types.Department) error {
			expected := []string{"Administration", "Field Operations", "Sales"}
			if len(departments) != len(expected) {
				return errors.New("wrong default department count")
			}
			for i, d := range departments {
				if d.Name != expected[i] {
					return errors.New("wrong default department " + d.Name)
				}
			}
			return nil
		})
	mockStorage.EXPECT().ListServiceTypeNames(gomock.Any(), tenant.ID).Return(nil, nil)
	mockStorage.EXPECT().CreateServiceTypes(gomock.Any(), tenant.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, serviceTypes []*types.ServiceType) error {
			if len(serviceTypes) != 3 || serviceTypes[0].Name != "General Service" {
				return errors.New("wrong default service types")
			}
			return nil
		})
	mockStates.EXPECT().Clear(gomock.Any(), testPrincipal.ID).Return(nil)

	result := s.Provision(context.Background(), testPrincipal)

	if !result.Success {
		t.Fatalf("expected success, got error %q at step %q", result.Error, result.Step)
	}
}

func TestService_Provision_SeedingFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, mockStates := newTestService(t, ctrl)

	tenant := &types.Tenant{ID: "tenant-1"}

	mockStates.EXPECT().LoadPending(gomock.Any(), testPrincipal.ID).Return(submittedState(), nil)
	mockStorage.EXPECT().ListMembershipsByPrincipal(gomock.Any(), testPrincipal.ID).Return(nil, nil)
	mockStorage.EXPECT().ProvisionTenant(gomock.Any(), gomock.Any()).Return(tenant, nil)
	mockStorage.EXPECT().ListDepartmentNames(gomock.Any(), tenant.ID).Return(nil, nil)
	mockStorage.EXPECT().CreateDepartments(gomock.Any(), tenant.ID, gomock.Any()).
		Return(errors.New("db down")).Times(2)
	mockStorage.EXPECT().ListServiceTypeNames(gomock.Any(), tenant.ID).
		Return(nil, errors.New("db down")).Times(2)
	mockStates.EXPECT().Clear(gomock.Any(), testPrincipal.ID).Return(nil)

	result := s.Provision(context.Background(), testPrincipal)

	if !result.Success {
		t.Fatalf("seeding failures must not fail provisioning, got error %q", result.Error)
	}
}

func TestService_Provision_DuplicateKeyResolvesToExistingOrganization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, mockStates := newTestService(t, ctrl)

	mockStates.EXPECT().LoadPending(gomock.Any(), testPrincipal.ID).Return(submittedState(), nil)
	// the concurrent run won between the membership check and the insert
	mockStorage.EXPECT().ListMembershipsByPrincipal(gomock.Any(), testPrincipal.ID).Return(nil, nil)
	mockStorage.EXPECT().ProvisionTenant(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
	mockStorage.EXPECT().ListMembershipsByPrincipal(gomock.Any(), testPrincipal.ID).
		Return([]*types.Membership{{TenantID: "tenant-winner"}}, nil)
	mockStates.EXPECT().Clear(gomock.Any(), testPrincipal.ID).Return(nil)

	result := s.Provision(context.Background(), testPrincipal)

	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if result.OrganizationID != "tenant-winner" {
		t.Errorf("expected the winner's tenant, got %q", result.OrganizationID)
	}
	if result.Step != ProvisionStepExistingOrganization {
		t.Errorf("expected step %q, got %q", ProvisionStepExistingOrganization, result.Step)
	}
}

func TestService_Provision_FallbackCompensatesOrphanTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, mockStates := newTestService(t, ctrl)

	tenant := &types.Tenant{ID: "tenant-1"}

	mockStates.EXPECT().LoadPending(gomock.Any(), testPrincipal.ID).Return(submittedState(), nil)
	mockStorage.EXPECT().ListMembershipsByPrincipal(gomock.Any(), testPrincipal.ID).Return(nil, nil)
	// the atomic path keeps failing with a transient error
	mockStorage.EXPECT().ProvisionTenant(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("deadlock detected")).Times(2)
	// fallback: tenant created, membership fails, tenant is deleted again
	mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(tenant, nil)
	mockStorage.EXPECT().AddMember(gomock.Any(), tenant.ID, testPrincipal.ID, "admin").
		Return("", errors.New("db down")).Times(2)
	mockStorage.EXPECT().DeleteTenant(gomock.Any(), tenant.ID).Return(nil)

	result := s.Provision(context.Background(), testPrincipal)

	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Error != ErrorOrganizationCreationFailed {
		t.Errorf("expected %q, got %q", ErrorOrganizationCreationFailed, result.Error)
	}
	if result.Step != ProvisionStepOrganization {
		t.Errorf("expected step %q, got %q", ProvisionStepOrganization, result.Step)
	}
}

func TestService_Provision_FallbackToleratesEmployeeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, mockStates := newTestService(t, ctrl)

	tenant := &types.Tenant{ID: "tenant-1"}

	mockStates.EXPECT().LoadPending(gomock.Any(), testPrincipal.ID).Return(submittedState(), nil)
	mockStorage.EXPECT().ListMembershipsByPrincipal(gomock.Any(), testPrincipal.ID).Return(nil, nil)
	mockStorage.EXPECT().ProvisionTenant(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("deadlock detected")).Times(2)
	mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(tenant, nil)
	mockStorage.EXPECT().AddMember(gomock.Any(), tenant.ID, testPrincipal.ID, "admin").Return("member-1", nil)
	mockStorage.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down")).Times(2)
	mockStorage.EXPECT().ListDepartmentNames(gomock.Any(), tenant.ID).Return(nil, nil)
	mockStorage.EXPECT().CreateDepartments(gomock.Any(), tenant.ID, gomock.Any()).Return(nil)
	mockStorage.EXPECT().ListServiceTypeNames(gomock.Any(), tenant.ID).Return(nil, nil)
	mockStorage.EXPECT().CreateServiceTypes(gomock.Any(), tenant.ID, gomock.Any()).Return(nil)
	mockStates.EXPECT().Clear(gomock.Any(), testPrincipal.ID).Return(nil)

	result := s.Provision(context.Background(), testPrincipal)

	if !result.Success {
		t.Fatalf("employee creation failure must not fail provisioning, got %q", result.Error)
	}
}

func TestService_Provision_MembershipCheckFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, mockStates := newTestService(t, ctrl)

	mockStates.EXPECT().LoadPending(gomock.Any(), testPrincipal.ID).Return(submittedState(), nil)
	mockStorage.EXPECT().ListMembershipsByPrincipal(gomock.Any(), testPrincipal.ID).
		Return(nil, errors.New("db down")).Times(2)

	result := s.Provision(context.Background(), testPrincipal)

	if result.Error != ErrorMembershipCheckFailed {
		t.Errorf("expected %q, got %q", ErrorMembershipCheckFailed, result.Error)
	}
	if result.Step != ProvisionStepMembershipCheck {
		t.Errorf("expected step %q, got %q", ProvisionStepMembershipCheck, result.Step)
	}
}

func TestService_Reconcile(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*MockStorageInterface, *MockStateStoreInterface)
		validate   func(*testing.T, *SessionResolution)
	}{
		{
			name: "membership wins over everything",
			setupMocks: func(mockStorage *MockStorageInterface, mockStates *MockStateStoreInterface) {
				mockStorage.EXPECT().ListMembershipsByPrincipal(gomock.Any(), testPrincipal.ID).
					Return([]*types.Membership{{TenantID: "tenant-1"}}, nil)
				mockStates.EXPECT().Clear(gomock.Any(), testPrincipal.ID).Return(nil)
			},
			validate: func(t *testing.T, r *SessionResolution) {
				if r.Route != RouteDashboard {
					t.Errorf("expected dashboard, got %q", r.Route)
				}
				if r.OrganizationID != "tenant-1" {
					t.Errorf("expected tenant-1, got %q", r.OrganizationID)
				}
			},
		},
		{
			name: "pending onboarding provisions and lands on dashboard",
			setupMocks: func(mockStorage *MockStorageInterface, mockStates *MockStateStoreInterface) {
				mockStorage.EXPECT().ListMembershipsByPrincipal(gomock.Any(), testPrincipal.ID).Return(nil, nil)
				mockStates.EXPECT().HasPendingOnboarding(gomock.Any(), testPrincipal.ID).Return(true)
				// the provisioning run it triggers
				mockStates.EXPECT().LoadPending(gomock.Any(), testPrincipal.ID).Return(submittedState(), nil)
				mockStorage.EXPECT().ListMembershipsByPrincipal(gomock.Any(), testPrincipal.ID).Return(nil, nil)
				mockStorage.EXPECT().ProvisionTenant(gomock.Any(), gomock.Any()).
					Return(&types.Tenant{ID: "tenant-new"}, nil)
				mockStorage.EXPECT().ListDepartmentNames(gomock.Any(), "tenant-new").Return(nil, nil)
				mockStorage.EXPECT().CreateDepartments(gomock.Any(), "tenant-new", gomock.Any()).Return(nil)
				mockStorage.EXPECT().ListServiceTypeNames(gomock.Any(), "tenant-new").Return(nil, nil)
				mockStorage.EXPECT().CreateServiceTypes(gomock.Any(), "tenant-new", gomock.Any()).Return(nil)
				mockStates.EXPECT().Clear(gomock.Any(), testPrincipal.ID).Return(nil)
			},
			validate: func(t *testing.T, r *SessionResolution) {
				if r.Route != RouteDashboard {
					t.Errorf("expected dashboard, got %q", r.Route)
				}
				if r.OrganizationID != "tenant-new" {
					t.Errorf("expected tenant-new, got %q", r.OrganizationID)
				}
			},
		},
		{
			name: "failed provisioning reports progress phase",
			setupMocks: func(mockStorage *MockStorageInterface, mockStates *MockStateStoreInterface) {
				mockStorage.EXPECT().ListMembershipsByPrincipal(gomock.Any(), testPrincipal.ID).Return(nil, nil)
				mockStates.EXPECT().HasPendingOnboarding(gomock.Any(), testPrincipal.ID).Return(true)
				mockStates.EXPECT().LoadPending(gomock.Any(), testPrincipal.ID).Return(nil, ErrExpired)
			},
			validate: func(t *testing.T, r *SessionResolution) {
				if r.Route != RouteProvisioning {
					t.Errorf("expected provisioning, got %q", r.Route)
				}
				if r.Phase != PhaseCreatingAccount {
					t.Errorf("expected phase %q, got %q", PhaseCreatingAccount, r.Phase)
				}
				if r.Error != ErrorExpired {
					t.Errorf("expected error %q, got %q", ErrorExpired, r.Error)
				}
			},
		},
		{
			name: "no membership and no pending state goes to the wizard",
			setupMocks: func(mockStorage *MockStorageInterface, mockStates *MockStateStoreInterface) {
				mockStorage.EXPECT().ListMembershipsByPrincipal(gomock.Any(), testPrincipal.ID).Return(nil, nil)
				mockStates.EXPECT().HasPendingOnboarding(gomock.Any(), testPrincipal.ID).Return(false)
			},
			validate: func(t *testing.T, r *SessionResolution) {
				if r.Route != RouteOnboarding {
					t.Errorf("expected onboarding, got %q", r.Route)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockStates := newTestService(t, ctrl)
			tt.setupMocks(mockStorage, mockStates)

			resolution, err := s.Reconcile(context.Background(), testPrincipal)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			tt.validate(t, resolution)
		})
	}
}

func TestService_GetState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, mockStates := newTestService(t, ctrl)

	// first-time visitors get the canonical defaults
	mockStates.EXPECT().Load(gomock.Any(), testPrincipal.ID).Return(nil, nil)

	state, err := s.GetState(context.Background(), testPrincipal.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Steps) != 5 {
		t.Errorf("expected 5 default steps, got %d", len(state.Steps))
	}
	if state.CurrentStepIndex != 0 {
		t.Errorf("expected index 0, got %d", state.CurrentStepIndex)
	}
}

func TestService_Dispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, mockStates := newTestService(t, ctrl)

	mockStates.EXPECT().Load(gomock.Any(), testPrincipal.ID).Return(nil, nil)

	var saved *State
	mockStates.EXPECT().Save(gomock.Any(), testPrincipal.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, state *State) error {
			saved = state
			return nil
		})

	state, err := s.Dispatch(context.Background(), testPrincipal.ID, Action{
		Type:         ActionUpdateOrganization,
		Organization: &Organization{Name: "A"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if state.Organization.Name != "A" {
		t.Errorf("expected organization update to apply, got %q", state.Organization.Name)
	}
	// the update re-validates the step, and a failing validation still
	// persists
	if len(state.Validation.Errors) == 0 {
		t.Error("expected validation errors for a one-character name")
	}
	if saved == nil {
		t.Fatal("expected the state to be saved")
	}
	if saved.Organization.Name != "A" {
		t.Errorf("expected saved organization, got %q", saved.Organization.Name)
	}
}
