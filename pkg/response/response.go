package response

import (
	"errors"
)

// Error is a sentinel error carrying the HTTP status code it should map to.
// Domain packages declare their taxonomy with NewError; the handler layer
// reads Code exactly once at the API boundary.
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

func NewError(code int, err string) error {
	return &Error{code, errors.New(err)}
}
