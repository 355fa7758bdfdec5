package history

import "errors"

var (
	ErrNotFound        = errors.New("history entry not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrInvalidType     = errors.New("entry type cannot be written through this flow")
	ErrValidation      = errors.New("invalid history payload")
)
