// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrInvalidArgument indicates a required field is missing or malformed.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique-name collision (e.g., category name taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthorized indicates the caller lacks the role or ownership for the operation.
	ErrUnauthorized = errors.New("unauthorized")
)
