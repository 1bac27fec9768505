package lzw

import "fmt"

type state struct {
	dict *dictionary

	codeWidth uint
	prevCode  int32

	resets int
}

func newState() *state {
	s := &state{
		dict: newDictionary(),
	}

	s.Reset()

	return s
}

func (s *state) Reset() {
	s.dict.Reset()

	s.prevCode = -1
	s.codeWidth = MinCodeWidth
}

func (s *state) NextCode() uint32 {
	return uint32(s.dict.Len())
}

// decodeCode applies one code to the dictionary and appends the bytes it
// stands for to dst.
func (s *state) decodeCode(code uint32, dst []byte) ([]byte, error) {
	if code == ClearCode {
		s.Reset()
		s.resets++

		return dst, nil
	}

	next := s.NextCode()

	if s.prevCode < 0 {
		if code >= next {
			return dst, fmt.Errorf("%w: code=%d next=%d", ErrUnknownCode, code, next)
		}

		s.prevCode = int32(code)

		return s.dict.AppendSequence(dst, code), nil
	}

	var first byte

	switch {
	case code < next:
		first = s.dict.First(code)
	case code == next && !s.dict.Full():
		// The code is the entry being defined right now: the previous
		// sequence followed by its own first byte.
		first = s.dict.First(uint32(s.prevCode))
	default:
		return dst, fmt.Errorf("%w: code=%d next=%d", ErrUnknownCode, code, next)
	}

	if !s.dict.Full() {
		s.dict.Add(uint32(s.prevCode), first)
		s.codeWidth = updateCodeWidth(s.codeWidth, s.dict.Len())
	}

	s.prevCode = int32(code)

	return s.dict.AppendSequence(dst, code), nil
}
