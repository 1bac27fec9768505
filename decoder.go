package lzw

import (
	"fmt"
	"io"
)

const flushSize = 32 * 1024

// Decoder writes a whole decompressed stream to outStream.
type Decoder struct {
	inStream  io.Reader
	outStream io.Writer

	opts *Options
	d    *decompressor

	buf []byte
}

func NewDecoder(inStream io.Reader, outStream io.Writer) *Decoder {
	return NewDecoderWithOptions(inStream, outStream, nil)
}

func NewDecoderWithOptions(inStream io.Reader, outStream io.Writer, opts *Options) *Decoder {
	return &Decoder{
		inStream:  inStream,
		outStream: outStream,

		opts: opts,
	}
}

// Init reads and checks the magic header. Skip it for header-less streams.
func (dec *Decoder) Init() error {
	err := ReadHeader(dec.inStream)
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	dec.d = newDecompressor(dec.inStream, dec.opts)

	return nil
}

func (dec *Decoder) Decode() error {
	if dec.d == nil {
		dec.d = newDecompressor(dec.inStream, dec.opts)
	}

	if dec.buf == nil {
		dec.buf = make([]byte, 0, flushSize)
	}

	var (
		ok  bool
		err error
	)

	for {
		dec.buf, ok, err = dec.d.advance(dec.buf)
		if err != nil {
			// hand out what was decoded before the bad code
			_ = dec.flush()

			return fmt.Errorf("decode code: %w", err)
		}

		if !ok || len(dec.buf) >= flushSize {
			err = dec.flush()
			if err != nil {
				return err
			}
		}

		if !ok {
			return nil
		}
	}
}

func (dec *Decoder) flush() error {
	if len(dec.buf) == 0 {
		return nil
	}

	_, err := dec.outStream.Write(dec.buf)
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}

	dec.buf = dec.buf[:0]

	return nil
}

func (dec *Decoder) Stats() Stats {
	if dec.d == nil {
		return Stats{}
	}

	return dec.d.Stats()
}

// Decode decompresses a .Z stream, header included, into outStream.
func Decode(inStream io.Reader, outStream io.Writer) error {
	dec := NewDecoder(inStream, outStream)

	err := dec.Init()
	if err != nil {
		return err
	}

	return dec.Decode()
}
