// Package repository defines error values shared across the
// repositories. These sentinels let handlers distinguish failure
// scenarios without string matching: ErrNotFound maps to HTTP 404,
// ErrForbidden to 403 and ErrConflict to 409.
package repository

import "errors"

// ErrNotFound is returned when a row does not exist or is not visible
// to the caller. Handlers should translate this into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own. Handlers should translate this into an
// HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an operation cannot proceed because of
// conflicting state. Handlers should translate this into HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrEmailExists is returned by user creation when the email is
// already registered.
var ErrEmailExists = errors.New("email already exists")
