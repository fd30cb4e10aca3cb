package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Instructions: []Instruction{
		{Op: ADDI, Rd: 1, Rs1: 0, Imm: 5},
		{Op: ADDI, Rd: 2, Rs1: 0, Imm: 10},
		{Op: ADD, Rd: 3, Rs1: 1, Rs2: 2},
		{Op: HALT},
	}}

	words, err := prog.Binary()
	assert.NoError(err)
	assert.Equal(len(prog.Instructions), len(words))

	for n, w := range words {
		decoded, err := Decode(w)
		assert.NoError(err, n)
		assert.Equal(prog.Instructions[n], decoded, n)
	}
}

func TestProgram_Binary_Empty(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}
	words, err := prog.Binary()
	assert.NoError(err)
	assert.Empty(words)
}

func TestProgram_Binary_FailsEagerly(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Instructions: []Instruction{
		{Op: ADDI, Rd: 1, Rs1: 0, Imm: 5},
		{Op: ADDI, Rd: 2, Rs1: 0, Imm: IMM_MAX + 1}, // does not fit
		{Op: HALT},
	}}

	words, err := prog.Binary()
	assert.ErrorIs(err, ErrFieldOverflow)
	assert.Nil(words)

	// The failure reports the index of the offending instruction.
	var encErr ErrEncode
	assert.True(errors.As(err, &encErr))
	assert.Equal(1, encErr.Index)
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Instructions: []Instruction{
		{Op: ADDI, Rd: 1, Rs1: 0, Imm: 5},
		{Op: HALT},
	}}

	var addresses []int
	var insts []Instruction
	for address, inst := range prog.Codes() {
		addresses = append(addresses, address)
		insts = append(insts, inst)
	}

	assert.Equal([]int{0, 1}, addresses)
	assert.Equal(prog.Instructions, insts)
}

func TestProgram_Codes_EarlyReturn(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Instructions: []Instruction{
		{Op: NOP},
		{Op: NOP},
		{Op: HALT},
	}}

	count := 0
	for range prog.Codes() {
		count++
		if count == 1 {
			break
		}
	}

	assert.Equal(1, count)
}
