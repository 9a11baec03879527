// Package apperr holds the error kinds shared by the analyze and search
// stages and their translation into HTTP responses.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured means a required credential is missing. No upstream
	// call is attempted.
	ErrNotConfigured = errors.New("not configured")

	// ErrProvider means an upstream provider rejected the call or could not
	// be reached.
	ErrProvider = errors.New("provider error")

	// ErrParse means the vision model reply was not valid JSON.
	ErrParse = errors.New("failed to parse AI response")

	// ErrInvalidFeatures means the reply was JSON but did not match the
	// feature schema.
	ErrInvalidFeatures = errors.New("invalid response from AI")
)

// NotConfigured reports that the credential held in key is missing.
func NotConfigured(key string) error {
	return fmt.Errorf("%s %w", key, ErrNotConfigured)
}

// ProviderError wraps a failure returned by an upstream API.
type ProviderError struct {
	Provider string
	Err      error
}

// Provider wraps err as a failure of the named provider.
func Provider(name string, err error) error {
	return &ProviderError{Provider: name, Err: err}
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s API error: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

func (e *ProviderError) Is(target error) bool { return target == ErrProvider }

// ParseError carries the decoder failure for a reply that was not JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Failed to parse AI response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// InvalidFeaturesError describes a reply that decoded but broke the schema.
type InvalidFeaturesError struct {
	Reason string
}

// InvalidFeatures reports a schema violation.
func InvalidFeatures(reason string) error {
	return &InvalidFeaturesError{Reason: reason}
}

func (e *InvalidFeaturesError) Error() string {
	return "Invalid response from AI: " + e.Reason
}

func (e *InvalidFeaturesError) Is(target error) bool { return target == ErrInvalidFeatures }

// Expected reports whether err is one of the typed failures above, as opposed
// to an unexpected error.
func Expected(err error) bool {
	return errors.Is(err, ErrNotConfigured) ||
		errors.Is(err, ErrProvider) ||
		errors.Is(err, ErrParse) ||
		errors.Is(err, ErrInvalidFeatures)
}
