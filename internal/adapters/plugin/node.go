package plugin

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/justrun/internal/core/ports"
)

const NodeID graft.ID = "adapter.artifact_loader"

func init() {
	graft.Register(graft.Node[ports.ArtifactLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactLoader, error) {
			return NewLoader(), nil
		},
	})
}
