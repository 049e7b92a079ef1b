package domain

import (
	"errors"
)

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")

	// ErrUpstream indicates the completion provider call failed. The
	// underlying provider error is logged server-side and must never be
	// attached to this error on its way to the HTTP boundary.
	ErrUpstream = errors.New("upstream completion failed")
)
