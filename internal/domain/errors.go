package domain

import "errors"

// ErrValidation marks user-correctable input errors. Operations abort before
// mutating any state when validation fails; callers surface the message and
// nothing is persisted.
var ErrValidation = errors.New("validation failed")
