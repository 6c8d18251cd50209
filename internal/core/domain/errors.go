package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Quantity Errors.

	// ErrUnknownUnit indicates a unit symbol is not registered in the catalog.
	// The parser recovers from it by returning an opaque quantity.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrIncompatibleFamily indicates a conversion between unit families,
	// or between two different custom units.
	ErrIncompatibleFamily = errors.New("incompatible unit family")

	// ErrUnresolvedUnit indicates a conversion was attempted on an opaque quantity.
	ErrUnresolvedUnit = errors.New("unresolved unit")
)
