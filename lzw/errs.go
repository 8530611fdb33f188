package lzw

import "errors"

// Sentinel errors making up the decoder's error taxonomy. Callers compare
// against these with errors.Is; the decoder returns them either bare or
// wrapped with context via github.com/pkg/errors.
var (
	// ErrBadMagic is returned when the first two header bytes are not
	// 0x1F 0x9D.
	ErrBadMagic = errors.New("lzw: bad magic number")

	// ErrUnsupportedWidth is returned when the header requests a code
	// width greater than 16 bits.
	ErrUnsupportedWidth = errors.New("lzw: unsupported code width")

	// ErrCorruptInput is returned on a KwKwK-violating code or a
	// first-code value of 256 or greater. Truncated input is not
	// reported: a trailing partial code ends decoding without an error.
	ErrCorruptInput = errors.New("lzw: corrupt input")
)
