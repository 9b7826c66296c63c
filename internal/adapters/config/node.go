package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/avify/internal/adapters/logger"
	"go.trai.ch/avify/internal/core/ports"
)

// NodeID is the Graft identifier for the config loader adapter.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Loader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
