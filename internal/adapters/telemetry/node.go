package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	"go.trai.ch/justrun/internal/adapters/telemetry/progrock"
	"go.trai.ch/justrun/internal/core/ports"
)

// FactoryNodeID is the unique identifier for the telemetry factory Graft node.
const FactoryNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.TelemetryFactory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{progrock.NodeID},
		Run: func(ctx context.Context) (ports.TelemetryFactory, error) {
			recorder, err := graft.Dep[progrock.Factory](ctx)
			if err != nil {
				return nil, err
			}
			tracer := otel.Tracer(InstrumentationName)
			return func(sink ports.Logger) ports.Telemetry {
				return WithTracing(recorder(sink), tracer)
			}, nil
		},
	})
}
