package goflo

import "errors"

var (
	// ErrConfiguration flags a malformed network or table detected before
	// any simulation runs.
	ErrConfiguration = errors.New("goflo: invalid configuration")
	// ErrOutOfRange flags a lookup outside a table's defined domain.
	ErrOutOfRange = errors.New("goflo: lookup outside defined domain")
	// ErrNotConverged flags an iterative search that exhausted its budget.
	ErrNotConverged = errors.New("goflo: iteration budget exhausted")
	// ErrNumericOverflow flags a non-finite stage or discharge.
	ErrNumericOverflow = errors.New("goflo: non-finite result")
)
