// Package word implements the balanced ternary value types of the btern
// architecture: the single-digit Trit, the 9-trit Tryte, and the 27-trit
// Word, together with their signed integer conversions and ripple-carry
// arithmetic.
//
// Trit sequences are stored least-significant first. A Word holds signed
// values in [-WORD_MAX, WORD_MAX]; the range is symmetric, so negation is
// a trit-wise flip with no correction step. Addition wraps silently modulo
// 3^27, mirroring fixed-width register hardware.
package word
