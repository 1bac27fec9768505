package lzw

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	r := require.New(t)

	testCases := []struct {
		name string

		inputFile string
		output    string

		checkErr func(err error, msgAndArgs ...interface{})
	}{
		{
			name:      "abc",
			inputFile: "testdata/abc.txt.Z",
			output:    "abc",
			checkErr:  r.NoError,
		},
		{
			name:      "self_referential_code",
			inputFile: "testdata/aaa.txt.Z",
			output:    "aaa",
			checkErr:  r.NoError,
		},
		{
			name:      "header_only",
			inputFile: "testdata/empty.Z",
			output:    "",
			checkErr:  r.NoError,
		},
		{
			name:      "bad_code",
			inputFile: "testdata/bad_code.Z",
			output:    "a",
			checkErr:  r.Error,
		},
		{
			name:      "bad_magic",
			inputFile: "testdata/bad_magic.Z",
			output:    "",
			checkErr:  r.Error,
		},
		{
			name:      "short_header",
			inputFile: "testdata/short.Z",
			output:    "",
			checkErr:  r.Error,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input, err := os.Open(tc.inputFile)
			r.NoError(err)
			defer input.Close()

			var out bytes.Buffer
			err = Decode(input, &out)
			tc.checkErr(err)
			r.Equal(tc.output, out.String())
		})
	}
}

func TestDecoderErrorKinds(t *testing.T) {
	r := require.New(t)

	err := Decode(bytes.NewReader([]byte{0x1f, 0x8b, 0x08}), &bytes.Buffer{})
	r.ErrorIs(err, ErrBadMagic)

	err = Decode(bytes.NewReader([]byte{0x1f, 0x9d, 0x90, 0x61, 0x58, 0x02}), &bytes.Buffer{})
	r.ErrorIs(err, ErrUnknownCode)

	errFull := errors.New("disk full")
	dec := NewDecoder(bytes.NewReader([]byte{0x61, 0xc4, 0x8c, 0x21}), failingWriter{errFull})
	r.ErrorIs(dec.Decode(), errFull)
}

func TestDecoderMatchesReader(t *testing.T) {
	r := require.New(t)

	compressed, err := os.ReadFile("testdata/words.txt.Z")
	r.NoError(err)

	var out bytes.Buffer
	dec := NewDecoderWithOptions(bytes.NewReader(compressed), &out, CompressOptions())
	r.NoError(dec.Init())
	r.NoError(dec.Decode())
	r.Equal(wordsFileSize, out.Len())

	reader, err := NewReaderWithHeader(bytes.NewReader(compressed), CompressOptions())
	r.NoError(err)
	expected := readInChunks(t, reader, 1000)
	r.Equal(expected, out.Bytes())
	r.Equal(reader.Stats(), dec.Stats())
}

func TestDecoderHeaderless(t *testing.T) {
	r := require.New(t)

	input := bytes.Repeat([]byte("abcabcabd"), 1000)

	var out bytes.Buffer
	dec := NewDecoder(bytes.NewReader(compressForTest(input)), &out)
	r.NoError(dec.Decode())
	r.Equal(input, out.Bytes())
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}
