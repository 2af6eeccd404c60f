package num

import "errors"

// Every error returned by this package wraps one of these, so callers can
// test with errors.Is.
var (
	ErrDivideByZero    = errors.New("division by zero")
	ErrUnderflow       = errors.New("unsigned underflow")
	ErrOverflow        = errors.New("value out of range")
	ErrInvalidArgument = errors.New("invalid argument")
)
