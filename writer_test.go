package lzw

import "bytes"

// codeWriter packs codes LSB-first, mirroring bitReader.
type codeWriter struct {
	buf bytes.Buffer

	acc   byte
	nBits uint

	groupBits uint64
}

func (w *codeWriter) WriteBits(v uint64, n uint) {
	for i := uint(0); i < n; i++ {
		w.acc |= byte((v>>i)&1) << w.nBits
		w.nBits++

		if w.nBits == 8 {
			w.buf.WriteByte(w.acc)
			w.acc, w.nBits = 0, 0
		}
	}

	w.groupBits += uint64(n)
}

func (w *codeWriter) Pad(width uint) {
	groupSize := uint64(width) * 8
	skip := (groupSize - w.groupBits%groupSize) % groupSize

	for ; skip > 0; skip-- {
		w.WriteBits(0, 1)
	}

	w.groupBits = 0
}

func (w *codeWriter) Bytes() []byte {
	out := append([]byte(nil), w.buf.Bytes()...)
	if w.nBits > 0 {
		out = append(out, w.acc)
	}

	return out
}

// testEncoder is a plain LZW compressor producing streams for round trips.
// Encode may be called once per dictionary generation, Clear starts a new one.
type testEncoder struct {
	w     codeWriter
	align bool

	dict    map[string]uint32
	next    int
	decNext int
	width   uint
	emitted bool

	codes int
}

func newTestEncoder(align bool) *testEncoder {
	e := &testEncoder{align: align}
	e.reset()

	return e
}

func (e *testEncoder) reset() {
	e.dict = make(map[string]uint32, maxEntries)
	for i := 0; i < 256; i++ {
		e.dict[string([]byte{byte(i)})] = uint32(i)
	}

	e.next = FirstCode
	e.decNext = FirstCode
	e.width = MinCodeWidth
	e.emitted = false
}

// emit writes a code and tracks the width the decoder will use for the next one.
func (e *testEncoder) emit(code uint32) {
	e.w.WriteBits(uint64(code), e.width)
	e.codes++

	if !e.emitted {
		e.emitted = true

		return
	}

	if e.decNext < maxEntries {
		e.decNext++

		old := e.width
		e.width = updateCodeWidth(e.width, e.decNext)
		if e.align && e.width != old {
			e.w.Pad(old)
		}
	}
}

func (e *testEncoder) Encode(data []byte) {
	if len(data) == 0 {
		return
	}

	w := string(data[:1])
	for _, c := range data[1:] {
		wc := w + string([]byte{c})
		if _, ok := e.dict[wc]; ok {
			w = wc

			continue
		}

		e.emit(e.dict[w])

		if e.next < maxEntries {
			e.dict[wc] = uint32(e.next)
			e.next++
		}

		w = string([]byte{c})
	}

	e.emit(e.dict[w])
}

func (e *testEncoder) Clear() {
	e.w.WriteBits(ClearCode, e.width)
	e.codes++

	old := e.width
	e.reset()

	if e.align {
		e.w.Pad(old)
	}
}

func (e *testEncoder) Bytes() []byte {
	return e.w.Bytes()
}

func compressForTest(data []byte) []byte {
	e := newTestEncoder(false)
	e.Encode(data)

	return e.Bytes()
}
