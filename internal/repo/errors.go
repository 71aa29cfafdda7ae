package repo

import "errors"

// ErrNotFound is returned by single-row lookups when no row matches.
var ErrNotFound = errors.New("not found")
