package app

import "go.trai.ch/justrun/internal/core/ports"

// Components is what the CLI needs from the dependency graph: the App to
// drive commands and the Logger to report a failed command.
type Components struct {
	App    *App
	Logger ports.Logger
}
