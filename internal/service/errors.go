package service

import "errors"

// Failure kinds surfaced to callers. Handlers map these onto HTTP statuses
// with errors.Is; remote cascade failures are logged at the call site and
// never surfaced.
var (
	// ErrInvalidArgument is returned for malformed input, such as an
	// empty board name or an operation targeting the owner itself.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when a board or membership does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied is returned when the caller is authenticated
	// but lacks the role or ownership the operation requires.
	ErrPermissionDenied = errors.New("permission denied")
)
