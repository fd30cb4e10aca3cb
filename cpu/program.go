package cpu

import (
	"iter"

	"github.com/btern/btern/word"
)

// Program is an ordered sequence of resolved instructions, ready for
// encoding. Labels and symbols are already concrete integers by the time
// instructions reach a Program.
type Program struct {
	Instructions []Instruction
}

// Binary encodes the program into a Word stream for loading. Encoding
// fails eagerly on the first out-of-range field, reporting the index of
// the offending instruction.
func (prog *Program) Binary() (words []word.Word, err error) {
	words = make([]word.Word, len(prog.Instructions))
	for n, inst := range prog.Instructions {
		words[n], err = inst.Encode()
		if err != nil {
			err = ErrEncode{Index: n, Err: err}
			words = nil
			return
		}
	}

	return
}

// Codes iterates the program's (address, instruction) pairs, with
// addresses relative to the program start.
func (prog *Program) Codes() iter.Seq2[int, Instruction] {
	return func(yield func(address int, inst Instruction) bool) {
		for n, inst := range prog.Instructions {
			if !yield(n, inst) {
				return
			}
		}
	}
}
