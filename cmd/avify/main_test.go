package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/avify/internal/adapters/logger"
	"go.trai.ch/avify/internal/adapters/telemetry"
	"go.trai.ch/avify/internal/app"
	"go.trai.ch/zerr"
)

func TestRunProviderFailure(t *testing.T) {
	var stderr bytes.Buffer

	code := run(context.Background(), nil, &stderr, func(context.Context) (*app.Components, error) {
		return nil, zerr.New("wiring failed")
	})

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "wiring failed")
}

func TestRunUnknownCommand(t *testing.T) {
	var stderr bytes.Buffer

	code := run(context.Background(), []string{"transmogrify"}, &stderr, func(context.Context) (*app.Components, error) {
		return &app.Components{
			Logger:    logger.New(),
			Telemetry: telemetry.NewNoop(),
		}, nil
	})

	assert.Equal(t, 1, code)
}
