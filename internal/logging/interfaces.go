// Copyright 2026 Shiftline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})
	Security() SecurityLoggerInterface
	Sync() error
}

// SecurityLoggerInterface emits audit-grade events on a dedicated logger.
type SecurityLoggerInterface interface {
	AuthnFailure(subject, mechanism string)
	AuthzFailure(subject, operation string)
	SystemStartup()
	SystemShutdown()
}
