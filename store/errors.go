package store

import "errors"

// ErrNotFound reports that no record exists for the requested key.
var ErrNotFound = errors.New("record not found")
