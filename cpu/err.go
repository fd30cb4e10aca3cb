package cpu

import (
	"errors"

	"github.com/btern/btern/translate"
	"github.com/btern/btern/word"
)

var f = translate.From

var (
	// Runtime faults
	ErrMemoryFault     = errors.New(f("memory address out of bounds"))
	ErrStackEmpty      = errors.New(f("call stack empty"))
	ErrStackFull       = errors.New(f("call stack full"))
	ErrHalted          = errors.New(f("cpu halted"))
	ErrProgramTooLarge = errors.New(f("program exceeds memory"))

	// Codec errors
	ErrOpcodeUnknown   = errors.New(f("opcode unknown"))
	ErrFieldOverflow   = errors.New(f("field overflow"))
	ErrRegisterInvalid = errors.New(f("register index invalid"))

	// Builder errors
	ErrScriptValue = errors.New(f("script operand invalid"))
)

// ErrUnknownOpcode reports an opcode field value with no defined mnemonic.
type ErrUnknownOpcode int64

func (err ErrUnknownOpcode) Error() string {
	return f("unknown opcode %d", int64(err))
}

func (err ErrUnknownOpcode) Is(other error) bool {
	return other == ErrOpcodeUnknown
}

// ErrFault reports an unrecoverable fault raised by the running machine,
// carrying the faulting program counter and, when the fetch succeeded, the
// raw instruction Word.
type ErrFault struct {
	Pc   int
	Word word.Word
	Err  error
}

func (err ErrFault) Error() string {
	return f("fault at %v (%v): %v", err.Pc, err.Word, err.Err)
}

func (err ErrFault) Unwrap() error {
	return err.Err
}

// ErrEncode reports the first instruction of a program that failed to
// encode, by its index in the sequence.
type ErrEncode struct {
	Index int
	Err   error
}

func (err ErrEncode) Error() string {
	return f("instruction %d: %v", err.Index, err.Err)
}

func (err ErrEncode) Unwrap() error {
	return err.Err
}

// ErrScript reports a program builder script failure.
type ErrScript struct {
	Builtin string
	Err     error
}

func (err ErrScript) Error() string {
	return f("%v: %v", err.Builtin, err.Err)
}

func (err ErrScript) Unwrap() error {
	return err.Err
}
