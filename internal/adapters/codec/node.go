package codec

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/avify/internal/core/ports"
)

// NodeID is the Graft identifier for the codec adapter.
const NodeID graft.ID = "adapter.codec"

func init() {
	graft.Register(graft.Node[ports.Codec]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Codec, error) {
			return NewAvifEnc(), nil
		},
	})
}
