// Package codec provides the external image conversion adapter.
package codec

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"go.trai.ch/avify/internal/core/domain"
	"go.trai.ch/avify/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultBinary is the encoder executable looked up on PATH.
const DefaultBinary = "avifenc"

var _ ports.Codec = (*AvifEnc)(nil)

// AvifEnc implements ports.Codec by shelling out to the avifenc binary.
// The pipeline treats it as an opaque capability; any failure surfaces as a
// per-file error, never a fatal one.
type AvifEnc struct {
	binary string
}

// NewAvifEnc creates a codec using the default avifenc binary.
func NewAvifEnc() *AvifEnc {
	return &AvifEnc{binary: DefaultBinary}
}

// NewAvifEncWithBinary creates a codec using a specific encoder executable.
func NewAvifEncWithBinary(binary string) *AvifEnc {
	return &AvifEnc{binary: binary}
}

// Encode converts the image at srcPath to AVIF and returns the encoded
// bytes. avifenc writes to a file, so the output goes to a temporary file
// that is read back and removed.
func (c *AvifEnc) Encode(ctx context.Context, srcPath string, quality int) ([]byte, error) {
	tmp, err := os.CreateTemp("", "avify-*"+domain.TargetExt)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCodecFailed.Error())
	}
	tmpName := tmp.Name()
	_ = tmp.Close()
	defer func() { _ = os.Remove(tmpName) }()

	args := encodeArgs(srcPath, tmpName, quality)
	cmd := exec.CommandContext(ctx, c.binary, args...) //nolint:gosec // binary is operator-configured

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.Wrap(err, domain.ErrCodecFailed.Error())
		wrapped = zerr.With(wrapped, "source", srcPath)
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			wrapped = zerr.With(wrapped, "stderr", tail(msg))
		}
		return nil, wrapped
	}

	data, err := os.ReadFile(tmpName)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCodecFailed.Error())
	}

	return data, nil
}

// encodeArgs builds the avifenc argument list for a single conversion.
func encodeArgs(src, dst string, quality int) []string {
	return []string{"-q", strconv.Itoa(quality), "--", src, dst}
}

// tail returns the last few lines of the encoder's stderr for error metadata.
func tail(s string) string {
	const maxLines = 5
	lines := strings.Split(s, "\n")
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return strings.Join(lines, "\n")
}
