package sped

import "errors"

// Fatal parse failure kinds. Callers distinguish them with errors.Is; a
// failed parse returns exactly one of these wrapped with context.
var (
	// ErrEncoding means the bytes cannot be decoded under the declared encoding.
	ErrEncoding = errors.New("cannot decode file with declared encoding")
	// ErrEmptyFile means the record table is empty after trimming.
	ErrEmptyFile = errors.New("file has no usable records")
	// ErrValidation means a required record (the 0000 identification) is missing.
	ErrValidation = errors.New("invalid file structure")
	// ErrParse covers tokenization-level structural failure under both strategies.
	ErrParse = errors.New("cannot parse file")
	// ErrNoTable means the record table was not attached to the result.
	ErrNoTable = errors.New("record table not attached")
)
