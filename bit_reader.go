package lzw

import (
	"errors"
	"io"
)

// bitReader pulls LSB-first integers of arbitrary width out of a byte stream.
type bitReader struct {
	inStream io.ByteReader

	acc   uint64
	nBits uint

	// bits of the last byte that did not fit into acc
	spill  uint64
	nSpill uint

	// bits consumed since the current code group started
	groupBits uint64

	BytesRead int64
}

func newBitReader(inStream io.ByteReader) *bitReader {
	return &bitReader{
		inStream: inStream,
	}
}

// ReadBits returns the next n bits, the earliest one being the least
// significant. ok is false when the stream ends before n bits are available;
// the buffered bits are kept in that case.
func (br *bitReader) ReadBits(n uint) (uint64, bool, error) {
	if n > 64 {
		panic("lzw: bit read wider than 64 bits")
	}

	for br.nBits < n {
		b, err := br.inStream.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, false, nil
			}

			return 0, false, err
		}

		br.BytesRead++
		br.push(b)
	}

	value := br.acc
	if n < 64 {
		value &= (1 << n) - 1
	}

	br.acc >>= n
	br.nBits -= n
	br.groupBits += uint64(n)

	if br.nSpill > 0 {
		br.acc |= br.spill << br.nBits
		br.nBits += br.nSpill
		br.spill, br.nSpill = 0, 0
	}

	return value, true, nil
}

func (br *bitReader) push(b byte) {
	br.acc |= uint64(b) << br.nBits

	if br.nBits > 56 {
		fit := 64 - br.nBits
		br.spill = uint64(b) >> fit
		br.nSpill = 8 - fit
		br.nBits = 64

		return
	}

	br.nBits += 8
}

// AlignGroup skips to the end of the current group of width-bit codes and
// starts a new group. compress(1) reads codes in groups of width bytes and
// drops the rest of a group when the code width changes or the table is
// cleared.
func (br *bitReader) AlignGroup(width uint) error {
	groupSize := uint64(width) * 8

	skip := (groupSize - br.groupBits%groupSize) % groupSize
	for skip > 0 {
		n := skip
		if n > 64 {
			n = 64
		}

		_, ok, err := br.ReadBits(uint(n))
		if err != nil {
			return err
		}

		if !ok {
			br.acc, br.nBits = 0, 0

			break
		}

		skip -= n
	}

	br.groupBits = 0

	return nil
}
