package services

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/patientkeeper/internal/client/validation"
	"github.com/dmitrijs2005/patientkeeper/internal/common"
)

// ErrSubmitInProgress is returned when a submission is already pending.
var ErrSubmitInProgress = errors.New("submission already in progress")

// ValidationError carries the per-field messages of a rejected form.
// It matches common.ErrorValidation with errors.Is.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields.Fields() {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return common.ErrorValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return common.ErrorValidation
}
