// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/avify/internal/adapters/cache"
	_ "go.trai.ch/avify/internal/adapters/codec"
	_ "go.trai.ch/avify/internal/adapters/config"
	_ "go.trai.ch/avify/internal/adapters/fs"
	_ "go.trai.ch/avify/internal/adapters/logger"
	_ "go.trai.ch/avify/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/avify/internal/app"
	_ "go.trai.ch/avify/internal/engine/pipeline"
)
