package cpu

import (
	"errors"
	"fmt"
	"io"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Builder produces resolved instruction sequences from a starlark script.
// The script calls one builtin per mnemonic (addi, brz, halt, ...) to
// append instructions; starlark variables and functions stand in for the
// labels and symbols of a textual assembler, so every operand reaching the
// Program is already a concrete integer.
type Builder struct {
	Verbose bool // If set, script print() output goes to the log.
}

// emit appends an instruction, validating its fields eagerly so a bad
// operand surfaces at the script call site rather than at encode time.
func (b *Builder) emit(prog *Program, name string, inst Instruction) (err error) {
	_, err = inst.Encode()
	if err != nil {
		err = ErrScript{Builtin: name, Err: err}
		return
	}

	if b.Verbose {
		log.Printf("%05d: %v", len(prog.Instructions), inst)
	}

	prog.Instructions = append(prog.Instructions, inst)
	return
}

type emitFn func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

// unpack binds builtin operands, tagging failures with ErrScriptValue so
// a bad operand is recognizable with errors.Is through the script error.
func unpack(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple, pairs ...any) (err error) {
	err = starlark.UnpackArgs(fn.Name(), args, kwargs, pairs...)
	if err != nil {
		err = errors.Join(ErrScriptValue, err)
	}

	return
}

// bare builds a builtin for a no-operand mnemonic.
func (b *Builder) bare(prog *Program, op Opcode) emitFn {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		err := unpack(fn, args, kwargs)
		if err != nil {
			return nil, err
		}

		return starlark.None, b.emit(prog, fn.Name(), Instruction{Op: op})
	}
}

// threeReg builds a builtin for a three-register mnemonic.
func (b *Builder) threeReg(prog *Program, op Opcode) emitFn {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var rd, rs1, rs2 int
		err := unpack(fn, args, kwargs, "rd", &rd, "rs1", &rs1, "rs2", &rs2)
		if err != nil {
			return nil, err
		}

		return starlark.None, b.emit(prog, fn.Name(), Instruction{Op: op, Rd: rd, Rs1: rs1, Rs2: rs2})
	}
}

// regImm builds a builtin for a register-immediate mnemonic.
func (b *Builder) regImm(prog *Program, op Opcode) emitFn {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var rd, rs1 int
		var imm int64
		err := unpack(fn, args, kwargs, "rd", &rd, "rs1", &rs1, "imm", &imm)
		if err != nil {
			return nil, err
		}

		return starlark.None, b.emit(prog, fn.Name(), Instruction{Op: op, Rd: rd, Rs1: rs1, Imm: imm})
	}
}

// Build executes a starlark script and returns the program it declared.
// Script failures are build-time errors; they never reach a running
// machine.
func (b *Builder) Build(name string, src io.Reader) (prog *Program, err error) {
	prog = &Program{}

	thread := &starlark.Thread{
		Name: name,
		Print: func(thread *starlark.Thread, msg string) {
			if b.Verbose {
				log.Printf("%v: %v", name, msg)
			}
		},
	}

	predeclared := starlark.StringDict{}
	for n := range REG_COUNT {
		predeclared[fmt.Sprintf("r%d", n)] = starlark.MakeInt(n)
	}

	builtins := map[string]emitFn{
		"nop":  b.bare(prog, NOP),
		"ret":  b.bare(prog, RET),
		"halt": b.bare(prog, HALT),
		"add":  b.threeReg(prog, ADD),
		"sub":  b.threeReg(prog, SUB),
		"addi": b.regImm(prog, ADDI),
		"subi": b.regImm(prog, SUBI),
		"ldw":  b.regImm(prog, LDW),
		"stw": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var rs1, rs2 int
			var imm int64
			err := unpack(fn, args, kwargs, "rs1", &rs1, "imm", &imm, "rs2", &rs2)
			if err != nil {
				return nil, err
			}
			return starlark.None, b.emit(prog, fn.Name(), Instruction{Op: STW, Rs1: rs1, Rs2: rs2, Imm: imm})
		},
		"jmp": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var imm int64
			var rs1 int
			err := unpack(fn, args, kwargs, "imm", &imm, "rs1?", &rs1)
			if err != nil {
				return nil, err
			}
			return starlark.None, b.emit(prog, fn.Name(), Instruction{Op: JMP, Rs1: rs1, Imm: imm})
		},
		"call": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var imm int64
			var rs1 int
			err := unpack(fn, args, kwargs, "imm", &imm, "rs1?", &rs1)
			if err != nil {
				return nil, err
			}
			return starlark.None, b.emit(prog, fn.Name(), Instruction{Op: CALL, Rs1: rs1, Imm: imm})
		},
		"brz": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var rs1 int
			var imm int64
			err := unpack(fn, args, kwargs, "rs1", &rs1, "imm", &imm)
			if err != nil {
				return nil, err
			}
			return starlark.None, b.emit(prog, fn.Name(), Instruction{Op: BRZ, Rs1: rs1, Imm: imm})
		},
		// here() is the address of the next instruction to be emitted.
		"here": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			err := unpack(fn, args, kwargs)
			if err != nil {
				return nil, err
			}
			return starlark.MakeInt(len(prog.Instructions)), nil
		},
	}
	for bname, fn := range builtins {
		predeclared[bname] = starlark.NewBuiltin(bname, fn)
	}

	opts := syntax.FileOptions{
		TopLevelControl: true,
	}
	_, err = starlark.ExecFileOptions(&opts, thread, name, src, predeclared)
	if err != nil {
		prog = nil
	}

	return
}
