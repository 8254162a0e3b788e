package repository

import "errors"

// ErrNotFound is returned when a lookup resolves to no row.
var ErrNotFound = errors.New("not found")
