package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/avify/internal/core/ports"
)

// NodeID is the Graft identifier for the mtime cache store adapter.
const NodeID graft.ID = "adapter.mtime_store"

func init() {
	graft.Register(graft.Node[ports.MtimeStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MtimeStore, error) {
			return NewStore(), nil
		},
	})
}
