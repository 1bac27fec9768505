package lzw

const defaultBufferSize = 4096

// Options configures Reader and Decoder behavior.
type Options struct {
	// AlignCodeGroups skips the padding compress(1) leaves at the end of a
	// group of codes whenever the code width grows or the table is cleared.
	// Leave it off for streams packed as one contiguous run of codes.
	AlignCodeGroups bool
	// BufferSize is the bufio size used when the source is not an io.ByteReader.
	BufferSize int
}

// DefaultOptions returns options for a contiguous code stream.
func DefaultOptions() *Options {
	return &Options{
		AlignCodeGroups: false,
		BufferSize:      defaultBufferSize,
	}
}

// CompressOptions returns options for files written by compress(1).
func CompressOptions() *Options {
	return &Options{
		AlignCodeGroups: true,
		BufferSize:      defaultBufferSize,
	}
}
