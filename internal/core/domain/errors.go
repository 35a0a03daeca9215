package domain

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrDuplicateUsername  = errors.New("user with this username already exists")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

// ValidationError marks input the caller can fix; handlers map it to a
// 400 with the message passed through verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Invalid(msg string) error { return &ValidationError{Message: msg} }

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
