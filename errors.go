package txt2md

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyPath       = errors.New("path cannot be empty")
	ErrInputNotFound   = errors.New("input file not found")
	ErrReadInput       = errors.New("failed to read input file")
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
	ErrWriteOutput     = errors.New("failed to write output file")
	ErrInvalidPolicy   = errors.New("invalid line break policy")
)
