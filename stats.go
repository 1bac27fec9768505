package lzw

// Stats describes the progress of a decompression.
type Stats struct {
	BytesIn  int64 // compressed bytes consumed, header excluded
	BytesOut int64 // bytes decoded so far, delivered or not
	Codes    int64 // codes read, CLEAR codes included
	Resets   int   // CLEAR codes seen

	DictionarySize int
	CodeWidth      uint
}

// CodesPerByte is the number of codes read per decoded byte.
func (s Stats) CodesPerByte() float64 {
	if s.BytesOut == 0 {
		return 0
	}

	return float64(s.Codes) / float64(s.BytesOut)
}
