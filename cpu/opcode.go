package cpu

import (
	"errors"
	"fmt"

	"github.com/btern/btern/word"
)

// Opcode identifies the operation an instruction performs. Opcodes occupy
// a 6-trit field and keep the btern architecture's assigned numbering.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	NOP  = Opcode(0)  // nop
	ADD  = Opcode(1)  // add
	ADDI = Opcode(2)  // addi
	SUB  = Opcode(3)  // sub
	SUBI = Opcode(4)  // subi
	LDW  = Opcode(5)  // ldw
	STW  = Opcode(6)  // stw
	JMP  = Opcode(7)  // jmp
	CALL = Opcode(8)  // call
	RET  = Opcode(9)  // ret
	BRZ  = Opcode(10) // brz
	HALT = Opcode(63) // halt
)

// Instruction word layout, least-significant trit first.
const (
	IMM_SHIFT    = 0  // Imm/Offset field,         12 trits.
	RS2_SHIFT    = 12 // Source 2 register field,   3 trits.
	RS1_SHIFT    = 15 // Source 1 register field,   3 trits.
	RD_SHIFT     = 18 // Destination register field, 3 trits.
	OPCODE_SHIFT = 21 // Opcode field,               6 trits.

	IMM_TRITS    = 12
	REG_TRITS    = 3
	OPCODE_TRITS = 6

	IMM_MAX = int64(265720) // (3^12 - 1) / 2

	REG_COUNT = 27
	REG_BIAS  = 13 // register index = raw 3-trit field value + REG_BIAS
)

// opcodeOf maps a raw opcode field value to its mnemonic. The mnemonic set
// is closed; decode of anything else is an error.
func opcodeOf(value int64) (op Opcode, ok bool) {
	op = Opcode(value)
	switch op {
	case NOP, ADD, ADDI, SUB, SUBI, LDW, STW, JMP, CALL, RET, BRZ, HALT:
		ok = true
	}

	return
}

// Instruction is the decoded view of one instruction Word.
type Instruction struct {
	Op  Opcode // Operation mnemonic.
	Rd  int    // Destination register index (0-26).
	Rs1 int    // Source 1 register index (0-26).
	Rs2 int    // Source 2 register index (0-26).
	Imm int64  // Immediate/offset value (12 trits, signed).
}

// putField encodes a field value into the instruction word at a trit offset.
func putField(w *word.Word, value int64, shift, width int) (err error) {
	trits, err := word.ToTrits(value, width)
	if err != nil {
		err = errors.Join(ErrFieldOverflow, err)
		return
	}

	copy(w[shift:shift+width], trits)
	return
}

// putRegister encodes a register index into a 3-trit field using the
// balanced bias mapping.
func putRegister(w *word.Word, index int, shift int) (err error) {
	if index < 0 || index >= REG_COUNT {
		err = errors.Join(ErrFieldOverflow, ErrRegisterInvalid)
		return
	}

	return putField(w, int64(index-REG_BIAS), shift, REG_TRITS)
}

// Encode packs the instruction into a Word. Fails with ErrFieldOverflow
// when any field's logical value exceeds its trit width.
func (inst Instruction) Encode() (w word.Word, err error) {
	if _, ok := opcodeOf(int64(inst.Op)); !ok {
		err = errors.Join(ErrFieldOverflow, ErrUnknownOpcode(inst.Op))
		return
	}

	err = putField(&w, inst.Imm, IMM_SHIFT, IMM_TRITS)
	if err != nil {
		return
	}
	err = putRegister(&w, inst.Rs2, RS2_SHIFT)
	if err != nil {
		return
	}
	err = putRegister(&w, inst.Rs1, RS1_SHIFT)
	if err != nil {
		return
	}
	err = putRegister(&w, inst.Rd, RD_SHIFT)
	if err != nil {
		return
	}
	err = putField(&w, int64(inst.Op), OPCODE_SHIFT, OPCODE_TRITS)

	return
}

// getRegister extracts a register index from a 3-trit field. The field
// width bounds the raw value to [-13,13], so an index outside [0,26] can
// only mean the extraction itself is broken.
func getRegister(w word.Word, shift int) (index int, err error) {
	index = int(word.FromTrits(w[shift:shift+REG_TRITS])) + REG_BIAS
	if index < 0 || index >= REG_COUNT {
		err = ErrRegisterInvalid
	}

	return
}

// Decode unpacks an instruction Word into its five fields. Fails with
// ErrOpcodeUnknown when the opcode field matches no defined mnemonic.
func Decode(w word.Word) (inst Instruction, err error) {
	raw := word.FromTrits(w[OPCODE_SHIFT : OPCODE_SHIFT+OPCODE_TRITS])
	op, ok := opcodeOf(raw)
	if !ok {
		err = ErrUnknownOpcode(raw)
		return
	}

	inst.Op = op
	inst.Imm = word.FromTrits(w[IMM_SHIFT : IMM_SHIFT+IMM_TRITS])
	inst.Rs2, err = getRegister(w, RS2_SHIFT)
	if err != nil {
		return
	}
	inst.Rs1, err = getRegister(w, RS1_SHIFT)
	if err != nil {
		return
	}
	inst.Rd, err = getRegister(w, RD_SHIFT)

	return
}

// String returns the assembly language representation of the instruction.
func (inst Instruction) String() (out string) {
	switch inst.Op {
	case NOP, RET, HALT:
		out = inst.Op.String()
	case ADD, SUB:
		out = fmt.Sprintf("%v r%d r%d r%d", inst.Op, inst.Rd, inst.Rs1, inst.Rs2)
	case ADDI, SUBI:
		out = fmt.Sprintf("%v r%d r%d %d", inst.Op, inst.Rd, inst.Rs1, inst.Imm)
	case LDW:
		out = fmt.Sprintf("%v r%d [r%d%+d]", inst.Op, inst.Rd, inst.Rs1, inst.Imm)
	case STW:
		out = fmt.Sprintf("%v [r%d%+d] r%d", inst.Op, inst.Rs1, inst.Imm, inst.Rs2)
	case JMP, CALL:
		out = fmt.Sprintf("%v [r%d%+d]", inst.Op, inst.Rs1, inst.Imm)
	case BRZ:
		out = fmt.Sprintf("%v r%d %d", inst.Op, inst.Rs1, inst.Imm)
	default:
		out = inst.Op.String()
	}

	return
}
