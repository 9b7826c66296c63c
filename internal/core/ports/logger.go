package ports

import "io"

// Logger is the logging abstraction used across the application.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational message.
	Info(msg string)
	// Warn logs a warning message.
	Warn(msg string)
	// Error logs an error with its cause chain.
	Error(err error)
	// SetJSON switches between JSON and pretty output.
	SetJSON(enable bool)
	// SetOutput updates the output destination.
	SetOutput(w io.Writer)
}
