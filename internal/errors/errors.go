// Package errors defines the error categories shared across the API:
// handlers map them to HTTP status codes and the orchestration layer uses
// them to decide what is recoverable.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation signals a missing or unusable input, such as a document
	// without parsed text. Terminal, never retried.
	ErrValidation = errors.New("validation failed")

	// ErrCommunication signals that a collaborating service (document or job
	// provider) was unreachable or returned an error.
	ErrCommunication = errors.New("communication failure")

	// ErrProviderConfiguration signals an unset, unsupported or
	// credential-less LLM provider.
	ErrProviderConfiguration = errors.New("llm provider not configured")

	// ErrProviderCall signals a failed or unparsable LLM round-trip.
	ErrProviderCall = errors.New("llm call failed")
)

func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func Communication(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCommunication, fmt.Sprintf(format, args...))
}

func ProviderConfiguration(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrProviderConfiguration, fmt.Sprintf(format, args...))
}

func ProviderCall(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrProviderCall, fmt.Sprintf(format, args...))
}

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidation reports whether err is (or wraps) ErrValidation.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
