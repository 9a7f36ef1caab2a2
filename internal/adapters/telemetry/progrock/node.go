package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/justrun/internal/core/ports"
)

// NodeID is the unique identifier for the progrock recorder factory node.
const NodeID graft.ID = "adapter.telemetry.progrock"

// Factory creates a progrock Recorder per run.
type Factory func(sink ports.Logger) ports.Telemetry

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Factory, error) {
			return New, nil
		},
	})
}
