package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/justrun/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/justrun/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/justrun/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/justrun/internal/adapters/plugin"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/justrun/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/justrun/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/justrun/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.HasherNodeID,
			cas.NodeID,
			shell.NodeID,
			plugin.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.DigestStore](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.ArtifactLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			// Telemetry is scoped to a single run and attached with WithTelemetry.
			return New(hasher, store, executor, loader, log, telemetry.NewNoOp()), nil
		},
	})
}
