package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/justrun/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/justrun/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/justrun/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/justrun/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/justrun/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/justrun/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/justrun/internal/core/ports"
	"go.trai.ch/justrun/internal/engine/orchestrator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			orchestrator.NodeID,
			logger.NodeID,
			cas.NodeID,
			fs.ResolverNodeID,
			telemetry.FactoryNodeID,
			watcher.FactoryNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	orch, err := graft.Dep[*orchestrator.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.DigestStore](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.InputResolver](ctx)
	if err != nil {
		return nil, err
	}

	telemetryFactory, err := graft.Dep[ports.TelemetryFactory](ctx)
	if err != nil {
		return nil, err
	}

	watcherFactory, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, orch, log, store, resolver, telemetryFactory, watcherFactory), nil
}
