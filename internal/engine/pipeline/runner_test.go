package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/avify/internal/adapters/cache"
	"go.trai.ch/avify/internal/adapters/fs"
	"go.trai.ch/avify/internal/adapters/telemetry"
	"go.trai.ch/avify/internal/core/domain"
	"go.trai.ch/avify/internal/core/ports/mocks"
	"go.trai.ch/avify/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return logger
}

func runnerConfig(t *testing.T, sourcePaths ...string) domain.Config {
	t.Helper()
	cfg := domain.DefaultConfig()
	cfg.SourcePaths = sourcePaths
	cfg.OutputDir = t.TempDir()
	cfg.CacheDir = t.TempDir()
	cfg.PreserveStructure = false
	cfg.Concurrency = 2
	return cfg
}

func TestRunner_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	srcDir := t.TempDir()
	fresh, _ := seedSource(t, srcDir, "a.png")
	cached, cachedMtime := seedSource(t, srcDir, "b.png")

	cfg := runnerConfig(t, srcDir)
	cachePath := domain.CacheFilePath(cfg.CacheDir)

	store := cache.NewStore()
	require.NoError(t, store.Save(cachePath, domain.MtimeMap{cached: cachedMtime}))

	codec := mocks.NewMockCodec(ctrl)
	codec.EXPECT().Encode(gomock.Any(), fresh, gomock.Any()).Return([]byte("avif"), nil)

	r := pipeline.NewRunner(fs.NewWalker(nil), store, codec, quietLogger(ctrl), telemetry.NewNoop())
	summary := r.Run(context.Background(), cfg)

	assert.Equal(t, 1, summary.Count(domain.StatusConverted))
	assert.Equal(t, 1, summary.Count(domain.StatusSkipped))
	assert.Equal(t, 0, summary.Count(domain.StatusFailed))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "a.png.avif"))

	persisted, err := store.Load(cachePath)
	require.NoError(t, err)
	assert.Len(t, persisted, 2)
	assert.Contains(t, persisted, fresh)
	assert.Contains(t, persisted, cached)
}

func TestRunner_RunSecondPassSkipsEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	srcDir := t.TempDir()
	src, _ := seedSource(t, srcDir, "a.png")

	cfg := runnerConfig(t, srcDir)
	store := cache.NewStore()

	codec := mocks.NewMockCodec(ctrl)
	codec.EXPECT().Encode(gomock.Any(), src, gomock.Any()).Return([]byte("avif"), nil).Times(1)

	r := pipeline.NewRunner(fs.NewWalker(nil), store, codec, quietLogger(ctrl), telemetry.NewNoop())

	first := r.Run(context.Background(), cfg)
	assert.Equal(t, 1, first.Count(domain.StatusConverted))

	second := r.Run(context.Background(), cfg)
	assert.Equal(t, 0, second.Count(domain.StatusConverted))
	assert.Equal(t, 1, second.Count(domain.StatusSkipped))
}

func TestRunner_RunFailuresDoNotAbortSiblings(t *testing.T) {
	ctrl := gomock.NewController(t)
	srcDir := t.TempDir()
	good1, _ := seedSource(t, srcDir, "a.png")
	bad, _ := seedSource(t, srcDir, "b.png")
	good2, _ := seedSource(t, srcDir, "c.png")

	cfg := runnerConfig(t, srcDir)
	store := cache.NewStore()

	codec := mocks.NewMockCodec(ctrl)
	codec.EXPECT().Encode(gomock.Any(), good1, gomock.Any()).Return([]byte("avif"), nil)
	codec.EXPECT().Encode(gomock.Any(), bad, gomock.Any()).Return(nil, zerr.New("encoder exploded"))
	codec.EXPECT().Encode(gomock.Any(), good2, gomock.Any()).Return([]byte("avif"), nil)

	r := pipeline.NewRunner(fs.NewWalker(nil), store, codec, quietLogger(ctrl), telemetry.NewNoop())
	summary := r.Run(context.Background(), cfg)

	assert.Equal(t, 2, summary.Count(domain.StatusConverted))
	assert.Equal(t, 1, summary.Count(domain.StatusFailed))
	require.Len(t, summary.Failures(), 1)
	assert.Equal(t, bad, summary.Failures()[0].Source)

	// The failed file stays out of the cache; the successes land in it.
	persisted, err := store.Load(domain.CacheFilePath(cfg.CacheDir))
	require.NoError(t, err)
	assert.Len(t, persisted, 2)
	assert.NotContains(t, persisted, bad)
}

func TestRunner_RunBadRootSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	srcDir := t.TempDir()
	src, _ := seedSource(t, srcDir, "a.png")

	cfg := runnerConfig(t, filepath.Join(t.TempDir(), "missing"), srcDir)
	store := cache.NewStore()

	codec := mocks.NewMockCodec(ctrl)
	codec.EXPECT().Encode(gomock.Any(), src, gomock.Any()).Return([]byte("avif"), nil)

	r := pipeline.NewRunner(fs.NewWalker(nil), store, codec, quietLogger(ctrl), telemetry.NewNoop())
	summary := r.Run(context.Background(), cfg)

	assert.Equal(t, 1, summary.Count(domain.StatusConverted))
}

func TestRunner_RunPersistsCacheExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := runnerConfig(t, "src")

	indexer := mocks.NewMockIndexer(ctrl)
	indexer.EXPECT().Index(gomock.Any(), gomock.Any()).Return(nil, nil)

	store := mocks.NewMockMtimeStore(ctrl)
	store.EXPECT().Load(domain.CacheFilePath(cfg.CacheDir)).Return(nil, nil)
	store.EXPECT().Save(domain.CacheFilePath(cfg.CacheDir), gomock.Any()).Return(nil).Times(1)

	r := pipeline.NewRunner(indexer, store, mocks.NewMockCodec(ctrl), quietLogger(ctrl), telemetry.NewNoop())
	summary := r.Run(context.Background(), cfg)

	assert.Empty(t, summary.Outcomes)
}

func TestRunner_RunUnusableCacheReprocessesEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	srcDir := t.TempDir()
	src, _ := seedSource(t, srcDir, "a.png")

	cfg := runnerConfig(t, srcDir)
	cachePath := domain.CacheFilePath(cfg.CacheDir)
	require.NoError(t, os.MkdirAll(cfg.CacheDir, 0o755))
	require.NoError(t, os.WriteFile(cachePath, []byte("{corrupt"), 0o644))

	codec := mocks.NewMockCodec(ctrl)
	codec.EXPECT().Encode(gomock.Any(), src, gomock.Any()).Return([]byte("avif"), nil)

	store := cache.NewStore()
	r := pipeline.NewRunner(fs.NewWalker(nil), store, codec, quietLogger(ctrl), telemetry.NewNoop())
	summary := r.Run(context.Background(), cfg)

	assert.Equal(t, 1, summary.Count(domain.StatusConverted))

	// The rewritten cache replaces the corrupt file.
	persisted, err := store.Load(cachePath)
	require.NoError(t, err)
	assert.Contains(t, persisted, src)
}

func TestRunner_RunContainsCodecPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	srcDir := t.TempDir()
	victim, _ := seedSource(t, srcDir, "a.png")
	survivor, _ := seedSource(t, srcDir, "b.png")

	cfg := runnerConfig(t, srcDir)
	cfg.Concurrency = 1

	codec := mocks.NewMockCodec(ctrl)
	codec.EXPECT().Encode(gomock.Any(), victim, gomock.Any()).DoAndReturn(
		func(context.Context, string, int) ([]byte, error) {
			panic("encoder bug")
		})
	codec.EXPECT().Encode(gomock.Any(), survivor, gomock.Any()).Return([]byte("avif"), nil)

	r := pipeline.NewRunner(fs.NewWalker(nil), cache.NewStore(), codec, quietLogger(ctrl), telemetry.NewNoop())
	summary := r.Run(context.Background(), cfg)

	assert.Equal(t, 1, summary.Count(domain.StatusConverted))
	assert.Equal(t, 1, summary.Count(domain.StatusFailed))
}
