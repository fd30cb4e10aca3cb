package emulator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/btern/btern/cpu"
)

func buildProgram(t *testing.T, lines ...string) *cpu.Program {
	builder := &cpu.Builder{}
	prog, err := builder.Build("test.star", strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return prog
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.Equal(MEMORY_WORDS, len(emu.Cpu.Memory))
}

func TestEmulator_Run(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = buildProgram(t,
		"addi(r1, r0, 5)",
		"addi(r2, r0, 10)",
		"add(r3, r1, r2)",
		"halt()",
	)

	assert.NoError(emu.Reset())
	assert.NoError(emu.Run())
	assert.True(emu.Cpu.Halted)
	assert.Equal(int64(15), emu.Cpu.Reg.Get(3).Int64())
}

func TestEmulator_Tick(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = buildProgram(t,
		"addi(r1, r0, 1)",
		"halt()",
	)
	assert.NoError(emu.Reset())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(1, emu.Cpu.Pc)

	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)

	// Ticking a halted machine stays done.
	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestEmulator_Subroutine(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = buildProgram(t,
		"addi(r1, r0, 30)",   // 0: scratch base address
		"addi(r2, r0, 42)",   // 1
		"call(5)",            // 2
		"ldw(r3, r1, 0)",     // 3
		"halt()",             // 4
		"stw(r1, 0, r2)",     // 5: subroutine stores r2
		"ret()",              // 6
	)

	assert.NoError(emu.Reset())
	assert.NoError(emu.Run())
	assert.Equal(int64(42), emu.Cpu.Reg.Get(3).Int64())
}

func TestEmulator_RuntimeFault(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = buildProgram(t,
		"ldw(r1, r0, 30000)", // beyond the 3^9 word memory
	)

	assert.NoError(emu.Reset())
	err := emu.Run()
	assert.ErrorIs(err, cpu.ErrMemoryFault)
	assert.True(emu.Cpu.Halted)

	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	assert.Equal(0, rt.Pc)
}

func TestEmulator_Reset_EncodeError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = &cpu.Program{Instructions: []cpu.Instruction{
		{Op: cpu.ADDI, Rd: 1, Imm: cpu.IMM_MAX + 1},
	}}

	err := emu.Reset()
	assert.ErrorIs(err, cpu.ErrFieldOverflow)
	assert.True(emu.Cpu.Halted)
}
