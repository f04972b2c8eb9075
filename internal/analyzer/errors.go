package analyzer

import (
	"errors"
	"fmt"
)

// FailureKind classifies why an analysis failed. The user-visible outcome
// is the same for every kind (sentinel result plus one error message), but
// callers and metrics can tell them apart.
type FailureKind string

const (
	// FailureConfig means a required credential or setting is missing.
	// Detected before any network call.
	FailureConfig FailureKind = "config"
	// FailureTransport means the LLM call itself failed (network, auth,
	// rate limit, provider error, empty response).
	FailureTransport FailureKind = "transport"
	// FailureParse means the reply text was not the expected JSON shape.
	FailureParse FailureKind = "parse"
)

// Error wraps an analysis failure with its kind.
type Error struct {
	Kind FailureKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ConfigError marks err as a configuration failure. Used by callers that
// detect missing credentials or an unusable provider before calling out.
func ConfigError(err error) *Error {
	return &Error{Kind: FailureConfig, Err: err}
}

func transportErr(format string, args ...any) *Error {
	return &Error{Kind: FailureTransport, Err: fmt.Errorf(format, args...)}
}

func parseErr(format string, args ...any) *Error {
	return &Error{Kind: FailureParse, Err: fmt.Errorf(format, args...)}
}

// Classify returns the FailureKind of err. Errors that did not originate
// in this package count as transport failures: they can only have come
// from the provider call.
func Classify(err error) FailureKind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return FailureTransport
}
