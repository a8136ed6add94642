package numfile

import "errors"

var (
	// ErrNotANumber signals a token that does not parse as a decimal number.
	ErrNotANumber = errors.New("numfile: not a number")
	// ErrNoRegularFile signals that the named path is not a regular file.
	ErrNoRegularFile = errors.New("numfile: not a regular file")
)
