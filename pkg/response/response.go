package response

import (
	"errors"
)

// Error is a domain error that already knows which HTTP status it maps to.
// The handler utilities read Code instead of guessing a status from the
// error text.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

// NewError builds the sentinel errors declared in each domain's error.go.
func NewError(code int, err string) error {
	return &Error{code, errors.New(err)}
}
