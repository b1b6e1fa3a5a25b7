package gotorus

import "errors"

// Errors
var (
	ErrCapacityExceeded   = errors.New("fixed slot capacity exceeded")
	ErrMalformedInput     = errors.New("malformed graph input")
	ErrInvariantViolation = errors.New("embedding invariant violated")
	ErrBadCatalogParam    = errors.New("bad catalog param")
	ErrNilGraph           = errors.New("nil graph")
	ErrCatalogReadOnly    = errors.New("catalog is read-only")
)
