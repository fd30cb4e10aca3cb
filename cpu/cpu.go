package cpu

import (
	"fmt"
	"log"

	"github.com/btern/btern/word"
)

// Cpu is the simulation context for one btern processor. It owns its
// register file, memory, program counter, and call stack exclusively;
// a simulation run mutates it through Step and Run only.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Reg    Registers   // Register file R0-R26.
	Pc     int         // Program counter, a Word address into Memory.
	Memory []word.Word // Word-addressed main memory.
	Stack  Stack       // Call stack of return addresses.
	Halted bool        // Terminal state; set by HALT or any fault.
}

// NewCpu creates a new CPU with a memory of the given number of Words.
func NewCpu(memWords int) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: make([]word.Word, memWords),
	}

	return
}

// Reset clears the registers, memory, call stack, and program counter,
// and returns the CPU to the running state.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Reg[:])
	clear(cpu.Memory)
	cpu.Stack.Reset()
	cpu.Pc = 0
	cpu.Halted = false
}

// Load places a Word stream into contiguous memory starting at base, sets
// the program counter to base, leaves the call stack empty, and puts the
// CPU in the running state.
func (cpu *Cpu) Load(words []word.Word, base int) (err error) {
	if base < 0 || base+len(words) > len(cpu.Memory) {
		err = ErrProgramTooLarge
		return
	}

	copy(cpu.Memory[base:], words)
	cpu.Stack.Reset()
	cpu.Pc = base
	cpu.Halted = false

	if cpu.Verbose {
		log.Printf("cpu: loaded %v words at %v", len(words), base)
	}

	return
}

// Step executes exactly one fetch-decode-execute iteration. A fault halts
// the CPU and is returned as an ErrFault carrying the faulting program
// counter and, when the fetch succeeded, the raw instruction Word.
// Stepping a halted CPU returns ErrHalted.
func (cpu *Cpu) Step() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	defer func() {
		if err != nil {
			cpu.Halted = true
		}
	}()

	if cpu.Pc < 0 || cpu.Pc >= len(cpu.Memory) {
		err = ErrFault{Pc: cpu.Pc, Err: ErrMemoryFault}
		return
	}
	raw := cpu.Memory[cpu.Pc]

	inst, err := Decode(raw)
	if err != nil {
		err = ErrFault{Pc: cpu.Pc, Word: raw, Err: err}
		return
	}

	if cpu.Verbose {
		log.Printf("%05d: %v", cpu.Pc, inst)
	}

	err = cpu.execute(inst)
	if err != nil {
		err = ErrFault{Pc: cpu.Pc, Word: raw, Err: err}
	}

	return
}

// Run iterates Step until the CPU halts or faults.
func (cpu *Cpu) Run() (err error) {
	for !cpu.Halted {
		err = cpu.Step()
		if err != nil {
			return
		}
	}

	return
}

// immWord converts a decoded immediate into a Word. A decoded immediate
// always fits its 12-trit field, well inside the Word range.
func immWord(imm int64) word.Word {
	w, _ := word.FromInt64(imm)
	return w
}

// effectiveAddress computes Rs1 + Imm as a Word address and validates it
// against memory bounds.
func (cpu *Cpu) effectiveAddress(rs1 int, imm int64) (address int, err error) {
	ea := word.Add(cpu.Reg.Get(rs1), immWord(imm)).Int64()
	if ea < 0 || ea >= int64(len(cpu.Memory)) {
		err = ErrMemoryFault
		return
	}

	address = int(ea)
	return
}

// target computes a control-flow target address from Rs1 + Imm. Bounds are
// not checked here; an out-of-range target faults on the next fetch.
func (cpu *Cpu) target(rs1 int, imm int64) int {
	return int(word.Add(cpu.Reg.Get(rs1), immWord(imm)).Int64())
}

// execute applies the effect of a single decoded instruction and advances
// the program counter. The mnemonic set is closed; the dispatch is
// exhaustive over it.
func (cpu *Cpu) execute(inst Instruction) (err error) {
	next := cpu.Pc + 1

	switch inst.Op {
	case NOP:
		// pass
	case HALT:
		cpu.Halted = true
	case ADD:
		cpu.Reg.Set(inst.Rd, word.Add(cpu.Reg.Get(inst.Rs1), cpu.Reg.Get(inst.Rs2)))
	case ADDI:
		cpu.Reg.Set(inst.Rd, word.Add(cpu.Reg.Get(inst.Rs1), immWord(inst.Imm)))
	case SUB:
		cpu.Reg.Set(inst.Rd, word.Sub(cpu.Reg.Get(inst.Rs1), cpu.Reg.Get(inst.Rs2)))
	case SUBI:
		cpu.Reg.Set(inst.Rd, word.Sub(cpu.Reg.Get(inst.Rs1), immWord(inst.Imm)))
	case LDW:
		var address int
		address, err = cpu.effectiveAddress(inst.Rs1, inst.Imm)
		if err != nil {
			return
		}
		cpu.Reg.Set(inst.Rd, cpu.Memory[address])
	case STW:
		var address int
		address, err = cpu.effectiveAddress(inst.Rs1, inst.Imm)
		if err != nil {
			return
		}
		cpu.Memory[address] = cpu.Reg.Get(inst.Rs2)
	case JMP:
		next = cpu.target(inst.Rs1, inst.Imm)
	case CALL:
		if cpu.Stack.Full() {
			err = ErrStackFull
			return
		}
		cpu.Stack.Push(cpu.Pc + 1)
		next = cpu.target(inst.Rs1, inst.Imm)
	case RET:
		address, ok := cpu.Stack.Pop()
		if !ok {
			err = ErrStackEmpty
			return
		}
		next = address
	case BRZ:
		if cpu.Reg.Get(inst.Rs1) == (word.Word{}) {
			next = int(inst.Imm)
		}
	default:
		err = ErrUnknownOpcode(inst.Op)
		return
	}

	cpu.Pc = next
	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("   pc: %v\nstack: %v\n halt: %v\n", cpu.Pc, cpu.Stack.Data, cpu.Halted)
	for n := range REG_COUNT {
		w := cpu.Reg.Get(n)
		text += fmt.Sprintf("  r%02d: %v (%v)\n", n, w, w.Int64())
	}

	return
}
