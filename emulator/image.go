package emulator

import (
	"io"

	"github.com/btern/btern/word"
)

// Binary image format: one byte per trit holding the signed trit value,
// 27 bytes per Word, least-significant trit first. A denser 4-trits-per-
// byte packing is a serialization concern layered elsewhere; the decoded
// trit sequence is identical either way.

// WriteImage serializes a Word stream to a binary image.
func WriteImage(out io.Writer, words []word.Word) (err error) {
	buf := make([]byte, word.TRITS_PER_WORD)
	for _, w := range words {
		for n, t := range w {
			buf[n] = byte(t.Int8())
		}
		_, err = out.Write(buf)
		if err != nil {
			return
		}
	}

	return
}

// ReadImage deserializes a binary image into a Word stream, validating
// every byte. A stream that ends mid-Word fails with ErrImageTruncated.
func ReadImage(in io.Reader) (words []word.Word, err error) {
	buf := make([]byte, word.TRITS_PER_WORD)
	for {
		_, err = io.ReadFull(in, buf)
		switch err {
		case io.EOF:
			err = nil
			return
		case io.ErrUnexpectedEOF:
			err = ErrImageTruncated
			return
		case nil:
			// pass
		default:
			return
		}

		var w word.Word
		for n, b := range buf {
			w[n], err = word.TritFromInt(int8(b))
			if err != nil {
				err = ErrImageTrit
				return
			}
		}
		words = append(words, w)
	}
}
