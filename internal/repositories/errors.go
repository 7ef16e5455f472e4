package repositories

import "errors"

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrDataSource is returned for unexpected storage-access failures. It
	// wraps the driver-level error; callers treat it generically and never
	// interpret storage-specific codes.
	ErrDataSource = errors.New("data source error")
)
