// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

// Principal is the authenticated identity behind a request. The profile
// claims are used as fallbacks when the onboarding wizard did not collect
// admin details explicitly.
type Principal struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
}
