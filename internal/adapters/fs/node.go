package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/avify/internal/adapters/logger"
	"go.trai.ch/avify/internal/core/ports"
)

// NodeID is the Graft identifier for the file indexer adapter.
const NodeID graft.ID = "adapter.indexer"

func init() {
	graft.Register(graft.Node[ports.Indexer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Indexer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWalker(log), nil
		},
	})
}
