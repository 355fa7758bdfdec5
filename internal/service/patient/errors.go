package patient

import "errors"

var (
	ErrNotFound             = errors.New("patient not found")
	ErrValidation           = errors.New("invalid patient data")
	ErrDuplicateRFC         = errors.New("a patient with this RFC already exists")
	ErrDuplicateIdentity    = errors.New("a patient with this name and birth date already exists")
	ErrConfirmationMismatch = errors.New("confirmation text does not match")
)
