package fuzzy

import "errors"

// Sentinel errors for the fuzzy hasher and comparator.
var (
	// ErrOverflow is returned when a digest's total input size exceeds
	// what any block-hash slot can represent.
	ErrOverflow = errors.New("fuzzy: input too large to summarize")

	// ErrBadSignature is returned when a signature string given to
	// Compare is not a well-formed "blocksize:hash1:hash2[,filename]"
	// triple.
	ErrBadSignature = errors.New("fuzzy: malformed signature")
)
