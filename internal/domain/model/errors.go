package model

import "errors"

// ErrValidation marks errors caused by invalid or missing input data.
// Callers distinguish it with errors.Is and surface a user-facing message;
// any other error from the calculation layer indicates a caller bug.
var ErrValidation = errors.New("validation error")
