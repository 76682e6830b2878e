// Package common defines sentinel errors shared by the client layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Input errors.
	ErrorValidation = errors.New("validation error")

	// Unexpected failures.
	ErrorInternal = errors.New("internal error")
)
