// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shiftline/onboarding-service/internal/logging"
)

type organizationForm struct {
	Name    string `validate:"required,min=2,max=100"`
	Website string `validate:"omitempty,url"`
}

type adminForm struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Password  string `validate:"omitempty,min=8"`
}

// Validator turns wizard step payloads into field-level errors and warnings.
// Validation results never block persistence of the rest of the state.
type Validator struct {
	validate *validator.Validate

	logger logging.LoggerInterface
}

func NewValidator(logger logging.LoggerInterface) *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (v *Validator) ValidateStep(stepID string, state *State) Validation {
	result := Validation{
		Errors:   []FieldMessage{},
		Warnings: []FieldMessage{},
	}

	switch stepID {
	case StepIDOrganization:
		form := organizationForm{
			Name:    strings.TrimSpace(state.Organization.Name),
			Website: strings.TrimSpace(state.Organization.Website),
		}
		result.Errors = append(result.Errors, v.structErrors(form)...)

	case StepIDAdmin:
		form := adminForm{
			FirstName: strings.TrimSpace(state.Admin.FirstName),
			LastName:  strings.TrimSpace(state.Admin.LastName),
			Email:     strings.TrimSpace(state.Admin.Email),
			Password:  state.Admin.Password,
		}
		result.Errors = append(result.Errors, v.structErrors(form)...)

		// a password must have been supplied at some point, but after a
		// reload the short-lived copy may legitimately be gone
		if form.Password == "" && !state.Admin.PasswordSet {
			result.Errors = append(result.Errors, FieldMessage{
				Field:   "password",
				Message: "password is required",
			})
		}

	case StepIDTeam:
		if len(state.Team.Departments) == 0 {
			result.Warnings = append(result.Warnings, FieldMessage{
				Field:   "departments",
				Message: "no departments specified, the default set will be created",
			})
		}
		if len(state.Team.ServiceTypes) == 0 {
			result.Warnings = append(result.Warnings, FieldMessage{
				Field:   "service_types",
				Message: "no service types specified, the default set will be created",
			})
		}
	}

	return result
}

func (v *Validator) structErrors(form interface{}) []FieldMessage {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		v.logger.Errorf("unexpected validation failure: %v", err)
		return []FieldMessage{{Field: "", Message: "validation failed"}}
	}

	messages := make([]FieldMessage, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, FieldMessage{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldMessage(fe),
		})
	}

	return messages
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
