package repository

import "errors"

// Sentinel errors shared by every store implementation. Callers match on
// these with errors.Is; raw driver errors never cross the store boundary.
var (
	// ErrNotFound indicates a lookup miss by id or name.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a create with a client-supplied (non-zero) Id.
	ErrConflict = errors.New("you can't give an id")

	// ErrDuplicateEmail indicates a registration for an email that already
	// has an account.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrNotSupported indicates an operation declared on the contract but
	// deliberately unimplemented. Callers must treat it as fatal, never as a
	// silent no-op.
	ErrNotSupported = errors.New("operation not supported")
)
