// ================== pkg/errors/errors.go =================
package errors

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")

	// ErrContextUnavailable is returned when the host cannot supply the selected text.
	// It is the only error that ends a pipeline pass.
	ErrContextUnavailable = errors.New("host context unavailable")

	// ErrLookupFailed marks a directory call that failed (transport error or non-success status).
	ErrLookupFailed = errors.New("directory lookup failed")

	// ErrNoMatch marks a successful directory call with an empty result.
	ErrNoMatch = errors.New("no matching user")

	ErrClipboardFailed = errors.New("clipboard write failed")
)
