package word

// Trit is a single balanced ternary digit with value -1, 0, or +1.
type Trit int8

const (
	N = Trit(-1) // negative
	Z = Trit(0)  // zero
	P = Trit(1)  // positive
)

// TritFromInt converts a signed integer into a Trit.
func TritFromInt(v int8) (t Trit, err error) {
	if v < -1 || v > 1 {
		err = ErrTritInvalid
		return
	}

	t = Trit(v)
	return
}

// Int8 returns the signed integer value of the Trit.
func (t Trit) Int8() int8 {
	return int8(t)
}

// Neg returns the negated Trit (+1 and -1 swap, 0 is unchanged).
func (t Trit) Neg() Trit {
	return -t
}

// BCT returns the 2-bit binary coded ternary representation of the Trit:
// N is 0b00, Z is 0b01, P is 0b10.
func (t Trit) BCT() byte {
	return byte(t + 1)
}

// TritFromBCT converts a 2-bit binary coded ternary value into a Trit.
// Only the low two bits are examined; 0b11 is not a valid encoding.
func TritFromBCT(bct byte) (t Trit, err error) {
	bct &= 0b11
	if bct == 0b11 {
		err = ErrBctInvalid
		return
	}

	t = Trit(int8(bct) - 1)
	return
}

func (t Trit) String() string {
	switch t {
	case N:
		return "-"
	case P:
		return "+"
	default:
		return "0"
	}
}
