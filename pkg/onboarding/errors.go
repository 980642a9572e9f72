// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import "errors"

// Sentinel errors for the persisted wizard state.
var (
	ErrNoState       = errors.New("no onboarding state")
	ErrInvalidFormat = errors.New("onboarding state is malformed")
	ErrExpired       = errors.New("onboarding state has expired")
)

// ErrorKind is the provisioning error taxonomy surfaced to the wizard.
type ErrorKind string

const (
	ErrorNoState                    ErrorKind = "no_state"
	ErrorInvalidFormat              ErrorKind = "invalid_format"
	ErrorExpired                    ErrorKind = "expired"
	ErrorStateReadFailed            ErrorKind = "state_read_failed"
	ErrorMissingOrganizationName    ErrorKind = "missing_organization_name"
	ErrorMembershipCheckFailed      ErrorKind = "membership_check_failed"
	ErrorOrganizationCreationFailed ErrorKind = "organization_creation_failed"
	ErrorEmployeeCreationFailed     ErrorKind = "employee_creation_failed"
	ErrorDepartmentCreationFailed   ErrorKind = "department_creation_failed"
	ErrorServiceTypeCreationFailed  ErrorKind = "service_type_creation_failed"
)

// Provisioning workflow stages, reported back for progress display and for
// resuming after partial failure.
const (
	ProvisionStepState                = "onboarding_state"
	ProvisionStepMembershipCheck      = "membership_check"
	ProvisionStepExistingOrganization = "existing_organization"
	ProvisionStepOrganization         = "organization"
	ProvisionStepDepartments          = "departments"
	ProvisionStepServiceTypes         = "service_types"
	ProvisionStepCompleted            = "completed"
)
