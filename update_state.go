package lzw

// updateCodeWidth grows the code width once the dictionary fills the space
// addressable with the current one.
func updateCodeWidth(width uint, nextCode int) uint {
	if width < MaxCodeWidth && nextCode >= 1<<width {
		return width + 1
	}

	return width
}
