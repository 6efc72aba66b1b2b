package exceptions

import "errors"

var (
	// ErrStoreConflict marks a write the clinic API rejected because the
	// requested time is no longer free.
	ErrStoreConflict = errors.New("store conflict")
	ErrStoreNotFound = errors.New("store resource not found")
)
