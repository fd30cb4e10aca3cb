package word

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord_Int64_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	values := []int64{
		0, 1, -1, 2, -2, 3, -3, 5, 15, 42, -42,
		9841, -9841, 9842, -9842,
		265720, -265720,
		3812798742, -3812798742,
		WORD_MAX, -WORD_MAX, WORD_MAX - 1, -WORD_MAX + 1,
	}

	for _, value := range values {
		w, err := FromInt64(value)
		assert.NoError(err, value)
		assert.Equal(value, w.Int64(), value)
	}
}

func TestWord_FromInt64_OutOfRange(t *testing.T) {
	assert := assert.New(t)

	for _, value := range []int64{WORD_MAX + 1, -WORD_MAX - 1, WORD_MAX * 2} {
		_, err := FromInt64(value)
		assert.ErrorIs(err, ErrOutOfRange, value)
	}
}

func TestTryte_Int64_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, value := range []int64{0, 1, -1, 40, TRYTE_MAX, -TRYTE_MAX} {
		tr, err := TryteFromInt64(value)
		assert.NoError(err, value)
		assert.Equal(value, tr.Int64(), value)
	}

	_, err := TryteFromInt64(TRYTE_MAX + 1)
	assert.ErrorIs(err, ErrOutOfRange)
	_, err = TryteFromInt64(-TRYTE_MAX - 1)
	assert.ErrorIs(err, ErrOutOfRange)
}

func TestTrit_FromInt(t *testing.T) {
	assert := assert.New(t)

	for _, v := range []int8{-1, 0, 1} {
		tr, err := TritFromInt(v)
		assert.NoError(err)
		assert.Equal(v, tr.Int8())
	}

	for _, v := range []int8{-2, 2, 100} {
		_, err := TritFromInt(v)
		assert.ErrorIs(err, ErrTritInvalid, v)
	}
}

func TestTrit_BCT(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		trit Trit
		bct  byte
	}){
		{N, 0b00},
		{Z, 0b01},
		{P, 0b10},
	}

	for _, entry := range table {
		assert.Equal(entry.bct, entry.trit.BCT())

		tr, err := TritFromBCT(entry.bct)
		assert.NoError(err)
		assert.Equal(entry.trit, tr)
	}

	_, err := TritFromBCT(0b11)
	assert.ErrorIs(err, ErrBctInvalid)

	// Only the low two bits participate.
	tr, err := TritFromBCT(0b100)
	assert.NoError(err)
	assert.Equal(N, tr)
}

func TestAddTrits(t *testing.T) {
	assert := assert.New(t)

	trits := []Trit{N, Z, P}
	for _, a := range trits {
		for _, b := range trits {
			for _, cin := range trits {
				sum, carry := AddTrits(a, b, cin)
				raw := a.Int8() + b.Int8() + cin.Int8()

				assert.Equal(raw, sum.Int8()+3*carry.Int8(), "a=%v b=%v cin=%v", a, b, cin)
				assert.GreaterOrEqual(sum.Int8(), int8(-1))
				assert.LessOrEqual(sum.Int8(), int8(1))
				assert.GreaterOrEqual(carry.Int8(), int8(-1))
				assert.LessOrEqual(carry.Int8(), int8(1))
			}
		}
	}
}

func mustWord(t *testing.T, value int64) Word {
	w, err := FromInt64(value)
	if err != nil {
		t.Fatalf("FromInt64(%v): %v", value, err)
	}
	return w
}

func TestAdd(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		a, b int64
	}){
		{"small", 9, 6},
		{"negative", -100, 58},
		{"carry_chain", 13, 1},
		{"large", 3812798742, -1293},
		{"zero", 0, 0},
	}

	for _, entry := range table {
		a := mustWord(t, entry.a)
		b := mustWord(t, entry.b)
		assert.Equal(entry.a+entry.b, Add(a, b).Int64(), entry.name)
	}
}

func TestAdd_Properties(t *testing.T) {
	assert := assert.New(t)

	samples := []int64{0, 1, -1, 13, -14, 9841, -2187, 1000000, -WORD_MAX, WORD_MAX, 42}

	for _, va := range samples {
		a := mustWord(t, va)

		// negate(negate(a)) == a, add(a, negate(a)) == 0, with no
		// asymmetric edge case at the extremes.
		assert.Equal(a, Neg(Neg(a)), va)
		assert.Equal(Word{}, Add(a, Neg(a)), va)

		for _, vb := range samples {
			b := mustWord(t, vb)
			assert.Equal(Add(a, b), Add(b, a), "%v+%v", va, vb)

			for _, vc := range samples {
				c := mustWord(t, vc)
				assert.Equal(Add(Add(a, b), c), Add(a, Add(b, c)), "%v+%v+%v", va, vb, vc)
			}
		}
	}
}

func TestAdd_Wraps(t *testing.T) {
	assert := assert.New(t)

	one := mustWord(t, 1)
	max := mustWord(t, WORD_MAX)
	min := mustWord(t, -WORD_MAX)

	// Overflow is defined behavior: silent wrap modulo 3^27.
	assert.Equal(-WORD_MAX, Add(max, one).Int64())
	assert.Equal(WORD_MAX, Sub(min, one).Int64())
	assert.Equal(int64(0), Add(max, Add(max, one)).Int64())
	assert.Equal(int64(-1), Add(max, max).Int64()) // 2*WORD_MAX - 3^27
}

func TestSub(t *testing.T) {
	assert := assert.New(t)

	a := mustWord(t, 100)
	b := mustWord(t, 58)
	assert.Equal(int64(42), Sub(a, b).Int64())
	assert.Equal(int64(-42), Sub(b, a).Int64())
}

func TestCompare(t *testing.T) {
	assert := assert.New(t)

	values := []int64{-WORD_MAX, -9842, -1, 0, 1, 2, 9841, WORD_MAX}

	for _, va := range values {
		for _, vb := range values {
			a := mustWord(t, va)
			b := mustWord(t, vb)

			expect := 0
			switch {
			case va < vb:
				expect = -1
			case va > vb:
				expect = 1
			}
			assert.Equal(expect, Compare(a, b), "%v vs %v", va, vb)
		}
	}
}

func TestWord_Trytes(t *testing.T) {
	assert := assert.New(t)

	w := mustWord(t, 1234567890)
	assert.Equal(w, FromTrytes(w.Tryte(0), w.Tryte(1), w.Tryte(2)))

	// Low tryte alone holds small values.
	w = mustWord(t, 42)
	assert.Equal(int64(42), w.Tryte(0).Int64())
	assert.Equal(int64(0), w.Tryte(1).Int64())
	assert.Equal(int64(0), w.Tryte(2).Int64())
}

func TestWord_String(t *testing.T) {
	assert := assert.New(t)

	w := mustWord(t, 5)
	text := w.String()
	assert.Equal(TRITS_PER_WORD, len(text))
	// 5 is +-- in balanced ternary, most significant first.
	assert.Equal("+--", text[TRITS_PER_WORD-3:])

	assert.Equal("0", Z.String())
	assert.Equal("+", P.String())
	assert.Equal("-", N.String())
}

func TestToTrits_Width(t *testing.T) {
	assert := assert.New(t)

	// 3-trit fields hold exactly [-13,13].
	for v := int64(-13); v <= 13; v++ {
		trits, err := ToTrits(v, 3)
		assert.NoError(err, v)
		assert.Equal(v, FromTrits(trits), v)
	}

	_, err := ToTrits(14, 3)
	assert.ErrorIs(err, ErrOutOfRange)
	_, err = ToTrits(-14, 3)
	assert.ErrorIs(err, ErrOutOfRange)
}
