package lzw

import "errors"

var (
	// ErrBadMagic is returned when a stream does not start with Magic.
	ErrBadMagic = errors.New("lzw: bad magic header")

	// ErrUnknownCode is returned for a code that is neither in the
	// dictionary nor the next one to be assigned. The input is corrupt.
	ErrUnknownCode = errors.New("lzw: unknown code")

	errAlreadyClosed = errors.New("lzw: already closed")
)
