// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/shiftline/onboarding-service/cmd"

func main() {
	cmd.Execute()
}
