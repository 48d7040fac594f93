// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/ezrec/mdpu/cpu"
)

const (
	DEFAULT_REGISTERS        = 8    // Register count of the reference machine.
	DEFAULT_MEMORY           = 128  // Memory words of the reference machine.
	DEFAULT_MAX_INSTRUCTIONS = 1000 // Instruction budget of the reference machine.
)

// Emulator is the execution engine: a program, an instruction budget, and
// the fetch-decode-execute position within the program.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.

	Program         cpu.Program // Program being executed.
	MaxInstructions uint        // Instruction budget for a run.

	Ip    uint // Instruction pointer; index into Program.
	Count uint // Instructions executed since reset.
}

// NewEmulator creates a new emulator for a program, positioned at its first
// instruction.
func NewEmulator(program cpu.Program, maxInstructions uint) (emu *Emulator) {
	emu = &Emulator{
		Program:         program,
		MaxInstructions: maxInstructions,
	}

	return
}

// Reset rewinds the instruction pointer and instruction count.
func (emu *Emulator) Reset() {
	if emu.Verbose {
		log.Printf("emulator: reset")
	}

	emu.Ip = 0
	emu.Count = 0
}

// Tick executes a single instruction against st.
// done is set once the instruction pointer leaves the program, or a halt
// instruction executes; neither the instruction pointer nor the count move
// past a halt.
func (emu *Emulator) Tick(st *cpu.State) (done bool, err error) {
	ip := emu.Ip
	if ip >= uint(len(emu.Program)) {
		done = true
		return
	}

	in := emu.Program[ip]
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, Instruction: in, Err: err}
		}
	}()

	if emu.Count >= emu.MaxInstructions {
		err = ErrBudgetExceeded{Limit: emu.MaxInstructions}
		return
	}

	if emu.Verbose {
		log.Printf("%03d: %v", ip, in)
	}

	done, err = emu.Execute(st, in)

	return
}

// Execute executes a single decoded instruction at the current instruction
// pointer.
func (emu *Emulator) Execute(st *cpu.State, in cpu.Instruction) (done bool, err error) {
	next_ip := emu.Ip + 1
	next_count := emu.Count + 1

	// Taken jumps do not count as an executed instruction.
	redirect := func(addr uint) {
		next_ip = addr
		next_count = emu.Count
	}

	switch in.Op {
	case cpu.OP_NOP:
		// pass
	case cpu.OP_ADD:
		err = st.Add(in.Reg1, in.Reg2, in.Reg3)
	case cpu.OP_SUB:
		err = st.Subtract(in.Reg1, in.Reg2, in.Reg3)
	case cpu.OP_MUL:
		err = st.Multiply(in.Reg1, in.Reg2, in.Reg3)
	case cpu.OP_DIV:
		err = st.Divide(in.Reg1, in.Reg2, in.Reg3)
	case cpu.OP_MOD:
		err = st.Mod(in.Reg1, in.Reg2, in.Reg3)
	case cpu.OP_NEG:
		err = st.Neg(in.Reg1, in.Reg2)
	case cpu.OP_ABS:
		err = st.Absolute(in.Reg1, in.Reg2)
	case cpu.OP_STORE:
		err = st.Store(in.Reg1, in.Addr)
	case cpu.OP_LOAD:
		err = st.Load(in.Addr, in.Reg1)
	case cpu.OP_LI:
		err = st.LoadImmediate(in.Reg1, in.Immediate)
	case cpu.OP_PUSH:
		err = st.Push(in.Reg1)
	case cpu.OP_POP:
		err = st.Pop(in.Reg1)
	case cpu.OP_MOV:
		err = st.Mov(in.Reg1, in.Reg2)
	case cpu.OP_JMP, cpu.OP_B:
		redirect(in.Addr)
	case cpu.OP_JZ, cpu.OP_BZ:
		var val int32
		val, err = st.Get(in.Reg1)
		if err == nil && val == 0 {
			redirect(in.Addr)
		}
	case cpu.OP_JNZ, cpu.OP_BNZ:
		var val int32
		val, err = st.Get(in.Reg1)
		if err == nil && val != 0 {
			redirect(in.Addr)
		}
	case cpu.OP_JE, cpu.OP_JNE:
		var a, b int32
		a, b, err = get2(st, in.Reg1, in.Reg2)
		if err == nil && (a == b) == (in.Op == cpu.OP_JE) {
			// Unlike the other jumps, the instruction still counts and
			// the pointer still advances: execution resumes at addr+1.
			next_ip = in.Addr + 1
		}
	case cpu.OP_AND:
		err = st.And(in.Reg1, in.Reg2, in.Reg3)
	case cpu.OP_OR:
		err = st.Or(in.Reg1, in.Reg2, in.Reg3)
	case cpu.OP_XOR:
		err = st.Xor(in.Reg1, in.Reg2, in.Reg3)
	case cpu.OP_TEST:
		err = st.Test(in.Reg1, in.Reg2, in.Reg3)
	case cpu.OP_NOT:
		err = st.Not(in.Reg1, in.Reg2)
	case cpu.OP_SHL:
		err = st.ShiftLeft(in.Reg1, in.Reg2, in.Reg3)
	case cpu.OP_SHR:
		err = st.ShiftRight(in.Reg1, in.Reg2, in.Reg3)
	case cpu.OP_CMP:
		err = st.Compare(in.Reg1, in.Reg2, in.Reg3)
	case cpu.OP_INC:
		err = st.Increment(in.Reg1)
	case cpu.OP_DEC:
		err = st.Decrement(in.Reg1)
	case cpu.OP_HALT:
		if emu.Verbose {
			log.Printf("emulator: halt after %d instructions", emu.Count)
		}
		done = true
		return
	default:
		err = cpu.ErrOpcodeInvalid
	}

	if err != nil {
		return
	}

	emu.Ip = next_ip
	emu.Count = next_count

	return
}

// Run ticks from the current instruction pointer until the program halts,
// runs off its end, or faults, and returns a snapshot of st.
// On a fault the snapshot is empty; st is left as the fault found it.
func (emu *Emulator) Run(st *cpu.State) (snap cpu.Snapshot, err error) {
	for done := false; !done; {
		done, err = emu.Tick(st)
		if err != nil {
			return
		}
	}

	snap = st.Snapshot()

	return
}

// get2 reads two registers, validating both before returning either.
func get2(st *cpu.State, reg1, reg2 uint) (a, b int32, err error) {
	a, err = st.Get(reg1)
	if err != nil {
		return
	}
	b, err = st.Get(reg2)
	return
}
