package cachestore

import "errors"

// ErrNotFound is returned when no entry is stored under the requested key.
var ErrNotFound = errors.New("cachestore: entry not found")
