package termcube

import "errors"

// Sentinel errors for the termcube package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("termcube: invalid move notation")
	ErrInvalidColor    = errors.New("termcube: invalid color code")
	ErrInvalidSnapshot = errors.New("termcube: invalid snapshot encoding")
)
