package app

import (
	"context"

	"github.com/grindlemire/graft"
	daemonadapter "go.trai.ch/cflags/internal/adapters/daemon"
	"go.trai.ch/cflags/internal/adapters/logger"
	"go.trai.ch/cflags/internal/adapters/provider"
	"go.trai.ch/cflags/internal/adapters/telemetry"
	"go.trai.ch/cflags/internal/core/ports"
)

// Components bundles the fully wired application for the CLI entry point.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			provider.NodeID,
			logger.NodeID,
			daemonadapter.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			flagProvider, err := graft.Dep[ports.FlagProvider](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			connector, err := graft.Dep[ports.DaemonConnector](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(flagProvider, log, connector, tracer),
				Logger: log,
			}, nil
		},
	})
}
