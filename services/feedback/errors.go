package feedback

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// DeliveryError signals that forwarding to the external form endpoint
// failed. The record is already persisted locally; the caller may retry the
// whole submission later.
type DeliveryError struct {
	RecordID string
	Err      error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("feedback %s stored locally but delivery failed: %v", e.RecordID, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// IsDeliveryError reports whether err is a delivery failure.
func IsDeliveryError(err error) bool {
	var de *DeliveryError
	return errors.As(err, &de)
}
