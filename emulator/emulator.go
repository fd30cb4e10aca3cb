// Package emulator wires a btern CPU to an encoded program: it encodes,
// loads, and runs a Program, and serializes Word streams as binary images.
package emulator

import (
	"errors"

	"github.com/btern/btern/cpu"
)

const (
	MEMORY_WORDS = 19683 // 3^9 Word memory, as the reference machine.
	LOAD_BASE    = 0     // Programs load at the bottom of memory.
)

// Emulator is a CPU plus the program it is running.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.
	*cpu.Cpu
	Program *cpu.Program // The currently loaded program.
}

// NewEmulator creates a new emulator with a default-sized memory.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(MEMORY_WORDS),
		Program: &cpu.Program{},
	}

	return
}

// Reset encodes the program and loads it at the base address, leaving the
// CPU running with an empty call stack. Encode failures are build-time
// errors; the machine is left halted in that case.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	words, err := emu.Program.Binary()
	if err != nil {
		emu.Cpu.Halted = true
		return
	}

	err = emu.Cpu.Load(words, LOAD_BASE)
	return
}

// Tick performs a single step of the emulator. done reports that the
// machine reached the halted state.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Step()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
		done = true
		return
	}
	if err != nil {
		err = &ErrRuntime{Pc: emu.Cpu.Pc, Err: err}
		return
	}

	done = emu.Cpu.Halted
	return
}

// Run iterates Tick until the machine halts or faults.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
