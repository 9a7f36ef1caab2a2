package ports

import (
	"context"
	"io"

	"go.trai.ch/justrun/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the phases of a run.
type Telemetry interface {
	// Record starts a new vertex.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording.
	Close() error
}

// Vertex is one recorded phase.
type Vertex interface {
	// Stdout returns a writer for the phase's standard output.
	Stdout() io.Writer
	// Stderr returns a writer for the phase's error output.
	Stderr() io.Writer
	// Log records a message on the vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, failed if err is non-nil.
	Complete(err error)
	// Cached marks the vertex as skipped thanks to the cache.
	Cached()
}

// TelemetryFactory creates a Telemetry reporting phase summaries to sink.
type TelemetryFactory func(sink Logger) Telemetry
