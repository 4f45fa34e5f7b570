package logging

import "errors"

var (
	// ErrDestinationUnavailable reports that the log file could not be opened
	// for appending, typically because it was removed or made unwritable
	// after construction.
	ErrDestinationUnavailable = errors.New("log destination unavailable")
	// ErrWriteFailed reports that the log file was opened but the write could
	// not be completed.
	ErrWriteFailed = errors.New("log write failed")
)
