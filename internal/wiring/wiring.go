// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/justrun/internal/adapters/cas"
	_ "go.trai.ch/justrun/internal/adapters/config"
	_ "go.trai.ch/justrun/internal/adapters/fs"
	_ "go.trai.ch/justrun/internal/adapters/logger"
	_ "go.trai.ch/justrun/internal/adapters/plugin"
	_ "go.trai.ch/justrun/internal/adapters/shell"
	_ "go.trai.ch/justrun/internal/adapters/telemetry"
	_ "go.trai.ch/justrun/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/justrun/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/justrun/internal/app"
	_ "go.trai.ch/justrun/internal/engine/orchestrator"
)
