package disc

import "errors"

// Sentinel errors classifying every transport failure the package can
// surface. All are unrecoverable locally; there is no retry policy anywhere
// in this package, and callers receive failures synchronously.
var (
	// ErrDeviceOpen marks an invalid or inaccessible device path.
	ErrDeviceOpen = errors.New("device open error")
	// ErrDeviceQuery marks a failed TOC header or track entry query.
	ErrDeviceQuery = errors.New("device query error")
	// ErrRead marks a failed raw sector read.
	ErrRead = errors.New("read error")
)
