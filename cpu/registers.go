package cpu

import (
	"github.com/btern/btern/word"
)

// Registers is the btern register file, R0 through R26. R0 is hardwired
// to zero: reads through Get always yield the zero Word, and writes
// through Set are discarded. The zero register is enforced here, not by
// programmer convention.
type Registers [REG_COUNT]word.Word

// Get reads a register by index.
func (r *Registers) Get(n int) word.Word {
	if n == 0 {
		return word.Word{}
	}

	return r[n]
}

// Set writes a register by index.
func (r *Registers) Set(n int, w word.Word) {
	if n == 0 {
		return
	}

	r[n] = w
}
