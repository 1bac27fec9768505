package lzw

// .Z stream constants.
const (
	ClearCode    = 256 // Resets the dictionary and the code width.
	FirstCode    = 257 // First dynamically assigned code.
	MinCodeWidth = 9
	MaxCodeWidth = 16

	maxEntries = 1 << MaxCodeWidth
)

// Magic is the header written by compress(1): two magic bytes followed by
// the flags byte for block mode with 16-bit codes.
var Magic = [3]byte{0x1f, 0x9d, 0x90}
