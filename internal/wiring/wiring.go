// Package wiring registers all adapter and application nodes with the
// dependency graph. Importing it for side effects is enough to make the
// full component tree resolvable.
package wiring

import (
	_ "go.trai.ch/cflags/internal/adapters/daemon"
	_ "go.trai.ch/cflags/internal/adapters/logger"
	_ "go.trai.ch/cflags/internal/adapters/provider"
	_ "go.trai.ch/cflags/internal/adapters/telemetry"
	_ "go.trai.ch/cflags/internal/app"
)
