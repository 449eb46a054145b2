package carriers

import "errors"

// Sentinel errors returned by the loaders. Callers match them with errors.Is.
var (
	// ErrNotFound is returned when no input file exists at the given location
	ErrNotFound = errors.New("not found")
	// ErrParse is returned when a file's content cannot be read as tabular data
	ErrParse = errors.New("parse error")
	// ErrInvalidState is returned when an operation is invoked out of order
	ErrInvalidState = errors.New("invalid state")
)
