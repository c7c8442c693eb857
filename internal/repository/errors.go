package repository

import "errors"

// ErrNotFound is returned for point reads that match nothing, and for
// owner-scoped writes that match nothing (missing or not owned).
var ErrNotFound = errors.New("not found")
