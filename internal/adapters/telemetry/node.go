package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/avify/internal/adapters/logger"
	"go.trai.ch/avify/internal/adapters/telemetry/progrock"
	"go.trai.ch/avify/internal/core/ports"
)

// NodeID is the Graft identifier for the telemetry adapter.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return progrock.New(log), nil
		},
	})
}
