package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/avify/internal/adapters/telemetry"
)

func TestNoop(t *testing.T) {
	n := telemetry.NewNoop()

	ctx := context.Background()
	outCtx, vertex := n.Record(ctx, "a.png")
	assert.Equal(t, ctx, outCtx)
	require.NotNil(t, vertex)

	// All recording operations are inert.
	vertex.Cached()
	vertex.Complete(nil)
	vertex.Complete(assert.AnError)

	assert.NoError(t, n.Close())
}
