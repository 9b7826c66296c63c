package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/avify/internal/adapters/cache"
	"go.trai.ch/avify/internal/adapters/codec"
	"go.trai.ch/avify/internal/adapters/fs"
	"go.trai.ch/avify/internal/adapters/logger"
	"go.trai.ch/avify/internal/adapters/telemetry"
	"go.trai.ch/avify/internal/core/ports"
)

// NodeID is the Graft identifier for the pipeline runner.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			cache.NodeID,
			codec.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			indexer, err := graft.Dep[ports.Indexer](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.MtimeStore](ctx)
			if err != nil {
				return nil, err
			}
			enc, err := graft.Dep[ports.Codec](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(indexer, store, enc, log, tel), nil
		},
	})
}
