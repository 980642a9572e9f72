// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package version

// Version is the application version, overridden at build time via ldflags.
var Version = "development"
