package service

import "errors"

// Sentinel errors the handler layer maps onto HTTP statuses. Wrap with
// fmt.Errorf("%w: ...") when extra context helps the caller.
var (
	ErrNotFound           = errors.New("record not found")
	ErrForbidden          = errors.New("access denied")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrDuplicateTag       = errors.New("tag number already exists")
	ErrInvalidInput       = errors.New("invalid input")
)
