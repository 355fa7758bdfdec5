package agenda

import "errors"

var (
	ErrNotFound        = errors.New("appointment not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrSlotUnavailable = errors.New("slot is already booked or blocked")
	ErrSlotOccupied    = errors.New("slot is occupied by an appointment")
	ErrInvalidState    = errors.New("appointment is not in a state that allows this operation")
	ErrInvalidDate     = errors.New("date is not bookable")
	ErrValidation      = errors.New("invalid agenda request")
	ErrNotYetElapsed   = errors.New("appointment time has not elapsed yet")
)
