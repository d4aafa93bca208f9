package booking

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrUnknownLead = errors.New("unknown lead")
)
