package repository

import "errors"

// ErrNotFound is returned when a requested document does not exist.
// Callers can test for it with errors.Is.
var ErrNotFound = errors.New("not found")
