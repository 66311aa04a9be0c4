package booking

import (
	"errors"
	"fmt"
)

const (
	CodeTripNotFound         = "tripNotFound"
	CodeInvalidBookingDate   = "invalidBookingDate"
	CodeDuplicateParticipant = "duplicateParticipant"
	CodeCapacityExceeded     = "capacityExceeded"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewBookingError(code, msg string) error {
	return &BookingError{
		Code:    code,
		Message: msg,
	}
}

// HasCode reports whether err is a BookingError carrying the given code.
func HasCode(err error, code string) bool {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
