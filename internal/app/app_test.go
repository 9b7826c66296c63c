package app_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/avify/internal/adapters/cache"
	"go.trai.ch/avify/internal/adapters/config"
	"go.trai.ch/avify/internal/adapters/fs"
	"go.trai.ch/avify/internal/adapters/telemetry"
	"go.trai.ch/avify/internal/app"
	"go.trai.ch/avify/internal/core/domain"
	"go.trai.ch/avify/internal/core/ports/mocks"
	"go.trai.ch/avify/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app        *app.App
	codec      *mocks.MockCodec
	configPath string
	cacheDir   string
	src        string
}

// newFixture wires a real pipeline around a mock codec and writes a config
// file pointing at a single-image source tree.
func newFixture(t *testing.T, ctrl *gomock.Controller, quality int) *fixture {
	t.Helper()

	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "photo.png")
	require.NoError(t, os.WriteFile(src, []byte("pixels"), 0o644))

	cacheDir := filepath.Join(t.TempDir(), "avify")
	configPath := filepath.Join(t.TempDir(), domain.ConfigFileName)
	content := fmt.Sprintf(`
sourcePaths:
  - %s
quality: %d
outputDir: %s
cacheDir: %s
preserveStructure: false
`, srcDir, quality, t.TempDir(), cacheDir)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	logger.EXPECT().SetJSON(gomock.Any()).AnyTimes()

	codec := mocks.NewMockCodec(ctrl)
	runner := pipeline.NewRunner(fs.NewWalker(nil), cache.NewStore(), codec, logger, telemetry.NewNoop())

	return &fixture{
		app:        app.New(config.NewLoader(logger), runner, logger),
		codec:      codec,
		configPath: configPath,
		cacheDir:   cacheDir,
		src:        src,
	}
}

func TestApp_RunUsesConfiguredQuality(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl, 55)

	f.codec.EXPECT().Encode(gomock.Any(), f.src, 55).Return([]byte("avif"), nil)

	summary := f.app.Run(context.Background(), app.RunOptions{
		ConfigPath: f.configPath,
		Quality:    -1,
	})

	assert.Equal(t, 1, summary.Count(domain.StatusConverted))
}

func TestApp_RunQualityOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl, 55)

	f.codec.EXPECT().Encode(gomock.Any(), f.src, 70).Return([]byte("avif"), nil)

	summary := f.app.Run(context.Background(), app.RunOptions{
		ConfigPath: f.configPath,
		Quality:    70,
	})

	assert.Equal(t, 1, summary.Count(domain.StatusConverted))
}

func TestApp_RunBrokenConfigDegradesToDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Chdir(t.TempDir())

	configPath := filepath.Join(t.TempDir(), domain.ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("quality: [broken"), 0o644))

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	// The degradation is surfaced, not silent.
	logger.EXPECT().Warn(gomock.Any()).MinTimes(1)

	runner := pipeline.NewRunner(
		fs.NewWalker(nil), cache.NewStore(), mocks.NewMockCodec(ctrl), logger, telemetry.NewNoop(),
	)
	a := app.New(config.NewLoader(logger), runner, logger)

	// The default source root does not exist here, so the run settles empty.
	summary := a.Run(context.Background(), app.RunOptions{ConfigPath: configPath, Quality: -1})

	assert.Empty(t, summary.Outcomes)
}

func TestApp_Clean(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl, 55)

	require.NoError(t, os.MkdirAll(f.cacheDir, 0o755))
	cacheFile := domain.CacheFilePath(f.cacheDir)
	require.NoError(t, os.WriteFile(cacheFile, []byte("{}"), 0o644))

	err := f.app.Clean(context.Background(), app.CleanOptions{ConfigPath: f.configPath})
	require.NoError(t, err)

	assert.NoDirExists(t, f.cacheDir)
}

func TestApp_CleanMissingCacheDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl, 55)

	err := f.app.Clean(context.Background(), app.CleanOptions{ConfigPath: f.configPath})

	assert.NoError(t, err)
}
