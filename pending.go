package lzw

// pending holds decoded bytes not yet handed to the caller.
type pending struct {
	buf []byte
	pos int
}

func newPending(size int) *pending {
	return &pending{
		buf: make([]byte, 0, size),
	}
}

func (w *pending) Len() int {
	return len(w.buf) - w.pos
}

// HasPending reports whether bytes are waiting to be read.
func (w *pending) HasPending() bool {
	return w.pos < len(w.buf)
}

// Tail compacts the buffer and returns it for appending.
func (w *pending) Tail() []byte {
	if w.pos > 0 {
		n := copy(w.buf, w.buf[w.pos:])
		w.buf = w.buf[:n]
		w.pos = 0
	}

	return w.buf
}

func (w *pending) SetTail(buf []byte) {
	w.buf = buf
}

func (w *pending) ReadPending(p []byte) int {
	n := copy(p, w.buf[w.pos:])
	w.pos += n

	if w.pos == len(w.buf) {
		w.buf = w.buf[:0]
		w.pos = 0
	}

	return n
}
