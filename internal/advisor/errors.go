package advisor

import "errors"

// Failure kinds surfaced by the pipeline. The HTTP layer maps these to
// status codes and a generic public message; internal detail stays in the
// server logs.
var (
	// ErrInvalidRequest means message or userId was missing.
	ErrInvalidRequest = errors.New("message and userId are required")

	// ErrStoreUnavailable wraps persistence failures. Not retried: a single
	// interactive chat turn has no retry budget worth spending on a
	// transient store outage.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrModelFailure wraps model transport errors, timeouts, and empty
	// completions. Not retried: a model call is paid, and a silent retry
	// would double-invoke it without benefit.
	ErrModelFailure = errors.New("model completion failed")
)
