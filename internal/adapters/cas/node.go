package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/justrun/internal/core/ports"
)

const NodeID graft.ID = "adapter.digest_store"

func init() {
	graft.Register(graft.Node[ports.DigestStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DigestStore, error) {
			return NewStore(), nil
		},
	})
}
