package word

const (
	TRITS_PER_TRYTE = 9  // Trits in a Tryte.
	TRITS_PER_WORD  = 27 // Trits in a Word.
	TRYTES_PER_WORD = 3  // Trytes in a Word.

	TRYTE_MAX = int64(9841)          // (3^9 - 1) / 2
	WORD_MAX  = int64(3812798742493) // (3^27 - 1) / 2
)

// Tryte is 9 trits, least-significant first.
type Tryte [TRITS_PER_TRYTE]Trit

// Word is 27 trits, least-significant first; the native register and
// instruction width of the btern processor.
type Word [TRITS_PER_WORD]Trit

// FromTrits returns the signed integer value of a balanced trit sequence,
// least-significant first.
func FromTrits(trits []Trit) (value int64) {
	pow := int64(1)
	for _, t := range trits {
		value += int64(t) * pow
		pow *= 3
	}

	return
}

// ToTrits converts a signed integer into a balanced trit sequence of the
// given width, least-significant first. Fails with ErrOutOfRange when the
// value does not fit.
func ToTrits(value int64, width int) (trits []Trit, err error) {
	max := int64(1)
	for range width {
		max *= 3
	}
	max = (max - 1) / 2

	if value < -max || value > max {
		err = ErrRange{Value: value, Width: width}
		return
	}

	trits = make([]Trit, width)
	for n := 0; value != 0; n++ {
		rem := value % 3
		// Balance the remainder: 2 and -2 round to the nearer multiple of 3.
		switch rem {
		case 2:
			rem = -1
		case -2:
			rem = 1
		}
		trits[n] = Trit(rem)
		value = (value - rem) / 3
	}

	return
}

// FromInt64 converts a signed integer into a Word. Fails with ErrOutOfRange
// when the magnitude exceeds WORD_MAX.
func FromInt64(value int64) (w Word, err error) {
	trits, err := ToTrits(value, TRITS_PER_WORD)
	if err != nil {
		return
	}

	copy(w[:], trits)
	return
}

// Int64 returns the signed integer value of the Word.
func (w Word) Int64() int64 {
	return FromTrits(w[:])
}

// TryteFromInt64 converts a signed integer into a Tryte. Fails with
// ErrOutOfRange when the magnitude exceeds TRYTE_MAX.
func TryteFromInt64(value int64) (t Tryte, err error) {
	trits, err := ToTrits(value, TRITS_PER_TRYTE)
	if err != nil {
		return
	}

	copy(t[:], trits)
	return
}

// Int64 returns the signed integer value of the Tryte.
func (t Tryte) Int64() int64 {
	return FromTrits(t[:])
}

// Tryte returns one of the three Trytes of the Word, n in [0,2],
// least-significant first.
func (w Word) Tryte(n int) (t Tryte) {
	copy(t[:], w[n*TRITS_PER_TRYTE:(n+1)*TRITS_PER_TRYTE])
	return
}

// FromTrytes assembles a Word from three Trytes, least-significant first.
func FromTrytes(lo, mid, hi Tryte) (w Word) {
	copy(w[0:], lo[:])
	copy(w[TRITS_PER_TRYTE:], mid[:])
	copy(w[2*TRITS_PER_TRYTE:], hi[:])
	return
}

// Compare orders two Words by their integer interpretation, returning
// -1, 0, or +1. The most significant differing trit decides.
func Compare(a, b Word) int {
	for n := TRITS_PER_WORD - 1; n >= 0; n-- {
		switch {
		case a[n] < b[n]:
			return -1
		case a[n] > b[n]:
			return 1
		}
	}

	return 0
}

// String renders the Word as 27 trit glyphs, most-significant first.
func (w Word) String() (text string) {
	for n := TRITS_PER_WORD - 1; n >= 0; n-- {
		text += w[n].String()
	}

	return
}

// String renders the Tryte as 9 trit glyphs, most-significant first.
func (t Tryte) String() (text string) {
	for n := TRITS_PER_TRYTE - 1; n >= 0; n-- {
		text += t[n].String()
	}

	return
}
