package store

import "errors"

// ErrNotFound is returned by lookups and updates that match no record.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail is returned by UserDirectory.Create when the
// directory enforces unique emails and the address is already taken.
var ErrDuplicateEmail = errors.New("email already registered")
