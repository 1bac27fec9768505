package lzw

import (
	"fmt"
	"os"
)

// ReadCloser is a Reader over a file it owns.
type ReadCloser struct {
	*Reader

	f *os.File
}

// Open opens a file written by compress(1) and checks its header.
func Open(path string) (*ReadCloser, error) {
	return OpenWithOptions(path, nil)
}

func OpenWithOptions(path string, opts *Options) (*ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r, err := NewReaderWithHeader(f, opts)
	if err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("lzw: %s: %w", path, err)
	}

	return &ReadCloser{Reader: r, f: f}, nil
}

// Close releases the file. Read fails once the file is closed, and a second
// Close reports errAlreadyClosed.
func (rc *ReadCloser) Close() error {
	if rc.f == nil {
		return errAlreadyClosed
	}

	f := rc.f
	rc.f = nil

	if err := f.Close(); err != nil {
		return fmt.Errorf("lzw: close %s: %w", f.Name(), err)
	}

	return nil
}

// Read decompresses into p from the open file.
func (rc *ReadCloser) Read(p []byte) (int, error) {
	if rc.f == nil {
		return 0, errAlreadyClosed
	}

	return rc.Reader.Read(p)
}

// Stats reports the counters of the underlying Reader, or zero values once
// the file is closed.
func (rc *ReadCloser) Stats() Stats {
	if rc.f == nil {
		return Stats{}
	}

	return rc.Reader.Stats()
}
