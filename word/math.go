package word

// AddTrits is the balanced ternary full adder. It sums two trits and an
// incoming carry (raw sum in [-3,3]) and splits the result so that
// sum + 3*carry equals the raw sum, with sum in {-1,0,+1}.
func AddTrits(a, b, cin Trit) (sum, carry Trit) {
	raw := int8(a) + int8(b) + int8(cin)

	switch {
	case raw <= -2:
		carry = N
	case raw >= 2:
		carry = P
	}

	sum = Trit(raw - 3*int8(carry))
	return
}

// Add performs trit-wise balanced ternary addition with carry propagation.
// A carry out of the most significant trit is dropped: results wrap
// silently modulo 3^27.
func Add(a, b Word) (result Word) {
	carry := Z
	for n := range TRITS_PER_WORD {
		result[n], carry = AddTrits(a[n], b[n], carry)
	}

	return
}

// Neg flips every trit of the Word. The representable range is symmetric
// about zero, so no correction step is needed.
func Neg(w Word) (result Word) {
	for n := range TRITS_PER_WORD {
		result[n] = w[n].Neg()
	}

	return
}

// Sub subtracts b from a, as Add(a, Neg(b)).
func Sub(a, b Word) Word {
	return Add(a, Neg(b))
}
