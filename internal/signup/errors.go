package signup

import "errors"

var (
	// ErrUnknownField is returned when a field name is not part of the sign-up form.
	ErrUnknownField = errors.New("unknown sign-up field")
)
