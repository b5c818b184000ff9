package errors

import "errors"

// Sentinel errors shared across layers. Detail is attached with fmt.Errorf
// and %w so handlers can classify with errors.Is while surfacing the full
// message to the caller.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrOrderNumberTaken = errors.New("order number already taken")
)
