// Package ports defines the core interfaces for the application.
package ports

import "context"

// Codec is the external conversion capability. It is opaque to the core:
// given a source path and a quality parameter it produces the encoded bytes
// in the target format, or fails for any reason (corrupt input, unsupported
// variant, resource exhaustion).
//
//go:generate mockgen -source=codec.go -destination=mocks/mock_codec.go -package=mocks
type Codec interface {
	// Encode converts the image at srcPath and returns the encoded bytes.
	Encode(ctx context.Context, srcPath string, quality int) ([]byte, error)
}
