package lzw

import (
	"bufio"
	"errors"
	"io"
)

// decompressor turns codes read from the bit stream into bytes.
type decompressor struct {
	bits *bitReader
	s    *state

	alignCodeGroups bool

	codes    int64
	bytesOut int64
}

func newDecompressor(inStream io.Reader, opts *Options) *decompressor {
	if opts == nil {
		opts = DefaultOptions()
	}

	return &decompressor{
		bits:            newBitReader(byteReader(inStream, opts.BufferSize)),
		s:               newState(),
		alignCodeGroups: opts.AlignCodeGroups,
	}
}

func byteReader(r io.Reader, size int) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}

	if size <= 0 {
		size = defaultBufferSize
	}

	return bufio.NewReaderSize(r, size)
}

// advance decodes the next code and appends its bytes to dst. ok is false
// once the stream holds no further complete code.
func (d *decompressor) advance(dst []byte) ([]byte, bool, error) {
	code, ok, err := d.bits.ReadBits(d.s.codeWidth)
	if err != nil || !ok {
		return dst, false, err
	}

	d.codes++

	width, resets := d.s.codeWidth, d.s.resets
	start := len(dst)

	dst, err = d.s.decodeCode(uint32(code), dst)
	if err != nil {
		return dst, false, err
	}

	d.bytesOut += int64(len(dst) - start)

	if d.alignCodeGroups && (d.s.codeWidth != width || d.s.resets != resets) {
		err = d.bits.AlignGroup(width)
		if err != nil {
			return dst, false, err
		}
	}

	return dst, true, nil
}

func (d *decompressor) Stats() Stats {
	return Stats{
		BytesIn:        d.bits.BytesRead,
		BytesOut:       d.bytesOut,
		Codes:          d.codes,
		Resets:         d.s.resets,
		DictionarySize: d.s.dict.Len(),
		CodeWidth:      d.s.codeWidth,
	}
}

// ReadHeader consumes the three magic bytes of a .Z stream.
func ReadHeader(inStream io.Reader) error {
	var header [len(Magic)]byte

	_, err := io.ReadFull(inStream, header[:])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrBadMagic
		}

		return err
	}

	if header != Magic {
		return ErrBadMagic
	}

	return nil
}

// Reader decompresses a .Z stream on demand.
type Reader struct {
	d   *decompressor
	out *pending

	isEndOfStream bool
	err           error
}

// NewReader returns a Reader over a header-less code stream.
func NewReader(inStream io.Reader) *Reader {
	return NewReaderWithOptions(inStream, nil)
}

func NewReaderWithOptions(inStream io.Reader, opts *Options) *Reader {
	return &Reader{
		d:   newDecompressor(inStream, opts),
		out: newPending(defaultBufferSize),
	}
}

// NewReaderWithHeader checks the magic header before decoding what follows it.
func NewReaderWithHeader(inStream io.Reader, opts *Options) (*Reader, error) {
	err := ReadHeader(inStream)
	if err != nil {
		return nil, err
	}

	return NewReaderWithOptions(inStream, opts), nil
}

// Read decodes codes until p can be filled or the stream ends. Errors are
// final: once returned, every later call returns the same error.
func (r *Reader) Read(p []byte) (n int, err error) {
	if r.err != nil {
		return 0, r.err
	}

	if len(p) == 0 {
		return 0, nil
	}

	var (
		buf []byte
		ok  bool
	)

	for r.out.Len() < len(p) && !r.isEndOfStream {
		buf, ok, err = r.d.advance(r.out.Tail())
		r.out.SetTail(buf)
		if err != nil {
			r.err = err

			break
		}

		if !ok {
			r.isEndOfStream = true
		}
	}

	if r.err == nil && r.isEndOfStream && !r.out.HasPending() {
		return 0, io.EOF
	}

	n = r.out.ReadPending(p)

	return n, r.err
}

func (r *Reader) Stats() Stats {
	return r.d.Stats()
}
