// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftline/onboarding-service/internal/logging"
	"github.com/shiftline/onboarding-service/internal/monitoring"
	"github.com/shiftline/onboarding-service/internal/tracing"
	"github.com/shiftline/onboarding-service/pkg/authentication"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/onboarding/state", a.getState)
	mux.Delete("/api/v0/onboarding/state", a.clearState)
	mux.Post("/api/v0/onboarding/actions", a.dispatch)
	mux.Post("/api/v0/onboarding/provision", a.provision)
	mux.Get("/api/v0/onboarding/session", a.session)
}

func (a *API) getState(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "onboarding.API.getState")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.unauthorized(w)
		return
	}

	state, err := a.service.GetState(ctx, principal.ID)
	if err != nil {
		a.logger.Errorf("failed to load onboarding state: %v", err)
		a.internalError(w, "failed to load onboarding state")
		return
	}

	a.writeJSON(w, http.StatusOK, state)
}

func (a *API) clearState(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "onboarding.API.clearState")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.unauthorized(w)
		return
	}

	if err := a.service.ClearState(ctx, principal.ID); err != nil {
		a.logger.Errorf("failed to clear onboarding state: %v", err)
		a.internalError(w, "failed to clear onboarding state")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) dispatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "onboarding.API.dispatch")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.unauthorized(w)
		return
	}

	var action Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if action.Type == "" {
		http.Error(w, "action type is required", http.StatusBadRequest)
		return
	}

	state, err := a.service.Dispatch(ctx, principal.ID, action)
	if err != nil {
		a.logger.Errorf("failed to dispatch onboarding action %s: %v", action.Type, err)
		a.internalError(w, "failed to apply onboarding action")
		return
	}

	a.writeJSON(w, http.StatusOK, state)
}

func (a *API) provision(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "onboarding.API.provision")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.unauthorized(w)
		return
	}

	result := a.service.Provision(ctx, principal)

	// provisioning failures are part of the response contract, not HTTP
	// errors; the client decides whether to retry based on the error kind
	a.writeJSON(w, http.StatusOK, result)
}

func (a *API) session(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "onboarding.API.session")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.unauthorized(w)
		return
	}

	resolution, err := a.service.Reconcile(ctx, principal)
	if err != nil {
		a.logger.Errorf("failed to reconcile session: %v", err)
		a.internalError(w, "failed to reconcile session")
		return
	}

	a.writeJSON(w, http.StatusOK, resolution)
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) unauthorized(w http.ResponseWriter) {
	a.writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
		"status":  http.StatusUnauthorized,
		"message": "unauthenticated",
	})
}

func (a *API) internalError(w http.ResponseWriter, message string) {
	a.writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"status":  http.StatusInternalServerError,
		"message": message,
	})
}
