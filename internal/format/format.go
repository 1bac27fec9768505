// Package format picks a decompressor for a stream from its leading bytes.
package format

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/kulaginds/lzw"
)

type Kind int

const (
	Unknown Kind = iota
	LZW
	Gzip
	Zstd
)

func (k Kind) String() string {
	switch k {
	case LZW:
		return "compress"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	}

	return "unknown"
}

var ErrUnknownFormat = errors.New("format: unknown compression format")

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Detect peeks at the head of br without consuming it.
func Detect(br *bufio.Reader) (Kind, error) {
	head, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return Unknown, err
	}

	switch {
	case bytes.HasPrefix(head, lzw.Magic[:]):
		return LZW, nil
	case bytes.HasPrefix(head, gzipMagic):
		return Gzip, nil
	case bytes.HasPrefix(head, zstdMagic):
		return Zstd, nil
	}

	return Unknown, nil
}

// Reader yields the decompressed content of a stream of any known Kind.
type Reader struct {
	io.Reader

	Kind Kind

	close func() error
	stats func() lzw.Stats
}

func NewReader(inStream io.Reader, opts *lzw.Options) (*Reader, error) {
	br := bufio.NewReader(inStream)

	kind, err := Detect(br)
	if err != nil {
		return nil, fmt.Errorf("detect format: %w", err)
	}

	r := &Reader{Kind: kind}

	switch kind {
	case LZW:
		zr, err := lzw.NewReaderWithHeader(br, opts)
		if err != nil {
			return nil, err
		}

		r.Reader = zr
		r.stats = zr.Stats
	case Gzip:
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}

		r.Reader = gr
		r.close = gr.Close
	case Zstd:
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}

		r.Reader = zr
		r.close = func() error {
			zr.Close()

			return nil
		}
	default:
		return nil, ErrUnknownFormat
	}

	return r, nil
}

// Stats reports decoder statistics. Only compress streams keep them.
func (r *Reader) Stats() (lzw.Stats, bool) {
	if r.stats == nil {
		return lzw.Stats{}, false
	}

	return r.stats(), true
}

func (r *Reader) Close() error {
	if r.close == nil {
		return nil
	}

	return r.close()
}
