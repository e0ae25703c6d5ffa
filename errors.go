package cubeview

import "errors"

// Sentinel errors for the cubeview package.
var (
	// Coordinate and index errors
	ErrRange = errors.New("cubeview: coordinate out of range")

	// Parsing errors
	ErrInvalidNotation = errors.New("cubeview: invalid move notation")

	// Sequence errors
	ErrSequenceLength = errors.New("cubeview: sticker sequence must be exactly 54 symbols")
	ErrInvalidSymbol  = errors.New("cubeview: symbol outside the color alphabet")
)
