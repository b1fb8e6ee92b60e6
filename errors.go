package main

import "errors"

// Errors reported by the view engine. Commands wrap these with context and
// leave all state untouched on failure.
var (
	// ErrColumnNotFound is returned when a column name does not resolve
	// against the current schema.
	ErrColumnNotFound = errors.New("column not found")

	// ErrMalformedCondition is returned when a filter segment has no
	// recognized operator, an empty column token, or a missing literal.
	ErrMalformedCondition = errors.New("malformed condition")

	// ErrPageOutOfRange is returned by page jumps outside [1, totalPages].
	ErrPageOutOfRange = errors.New("page out of range")

	// ErrInvalidPageSize is returned for page sizes below 1.
	ErrInvalidPageSize = errors.New("invalid page size")

	// ErrEmptyDataset is returned when an operation is undefined on a
	// dataset with no columns at all. Zero rows is never an error.
	ErrEmptyDataset = errors.New("dataset has no columns")
)
