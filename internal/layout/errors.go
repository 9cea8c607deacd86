package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks a configuration that can never produce a layout.
	ErrConfiguration = errors.New("layout: invalid configuration")

	// ErrDegenerateStart marks a start platform too small to offset from.
	// It is recovered locally by regenerating; it only escapes wrapped in
	// a GenerationFailedError.
	ErrDegenerateStart = errors.New("layout: degenerate start platform")

	// ErrGenerationFailed is returned when the retry ceiling is exhausted.
	ErrGenerationFailed = errors.New("layout: generation failed")

	// ErrSink wraps errors reported by a Sink while applying a result.
	ErrSink = errors.New("layout: sink error")
)

// ConfigError describes a single invalid configuration field.
type ConfigError struct {
	Field  string
	Reason string
	Err    error // Underlying cause, may be nil
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("layout: invalid %s: %s", e.Field, e.Reason)
}

// Unwrap exposes ErrConfiguration and the underlying cause to errors.Is.
func (e *ConfigError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConfiguration}
	}
	return []error{ErrConfiguration, e.Err}
}

func configErrorf(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// GenerationFailedError is returned after MaxAttempts degenerate starts.
type GenerationFailedError struct {
	Attempts int
}

func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("layout: generation failed after %d attempts: start platform never exceeded max offset", e.Attempts)
}

// Unwrap exposes ErrGenerationFailed and ErrDegenerateStart to errors.Is.
func (e *GenerationFailedError) Unwrap() []error {
	return []error{ErrGenerationFailed, ErrDegenerateStart}
}
