package api

import "errors"

// ErrUnavailable indicates the backend could not be reached at all: a
// dial failure, a timeout, or a cancelled context. Callers use it to
// decide whether falling back to local storage makes sense.
var ErrUnavailable = errors.New("backend unavailable")
