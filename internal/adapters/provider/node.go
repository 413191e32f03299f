package provider

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cflags/internal/core/ports"
)

// NodeID is the unique identifier for the flag provider Graft node.
const NodeID graft.ID = "adapter.provider"

func init() {
	graft.Register(graft.Node[ports.FlagProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FlagProvider, error) {
			return New(), nil
		},
	})
}
