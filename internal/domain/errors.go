package domain

import "errors"

// ErrNotFound marks a missing row so callers can map it to a 404.
var ErrNotFound = errors.New("not found")
