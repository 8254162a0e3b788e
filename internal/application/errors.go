package application

import "errors"

// Terminal outcomes the handlers translate into status codes. Store misses
// surface as repository.ErrNotFound and pass through untouched.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrForbidden          = errors.New("forbidden")
)
