package cpu

import (
	"fmt"
	"slices"
)

const (
	SHIFT_MASK = 0x1f // Shift amounts use only the low five bits.
)

// State is the processor state: register bank, memory, and stack pointer.
//
// The stack lives at the top of Memory and grows downwards; the active stack
// is Memory[Sp+1:].
type State struct {
	Register []int32 // Register bank.
	Memory   []int32 // Flat memory, shared by data and stack.
	Sp       uint    // Stack pointer; the next free stack slot.
}

// NewState creates a zeroed processor with the given register count and
// memory size, in words.
func NewState(registers, memory uint) (st *State, err error) {
	if registers == 0 {
		err = ErrRegisterCount
		return
	}
	if memory == 0 {
		err = ErrMemorySize
		return
	}

	st = &State{
		Register: make([]int32, registers),
		Memory:   make([]int32, memory),
		Sp:       memory - 1,
	}

	return
}

// Reset the processor state.
// - Clears the registers and memory.
// - Empties the stack.
func (st *State) Reset() {
	clear(st.Register)
	clear(st.Memory)
	st.Sp = uint(len(st.Memory)) - 1
}

// checkRegister validates register indexes, in order.
func (st *State) checkRegister(regs ...uint) (err error) {
	for _, reg := range regs {
		if reg >= uint(len(st.Register)) {
			err = ErrRegisterOutOfBounds{Index: reg}
			return
		}
	}
	return
}

func (st *State) checkAddress(addr uint) (err error) {
	if addr >= uint(len(st.Memory)) {
		err = ErrMemoryOutOfBounds{Address: addr}
	}
	return
}

// Get returns the value of a register.
func (st *State) Get(reg uint) (value int32, err error) {
	err = st.checkRegister(reg)
	if err != nil {
		return
	}

	value = st.Register[reg]
	return
}

// alu3 performs 'reg3 = op(reg1, reg2)'.
func (st *State) alu3(reg1, reg2, reg3 uint, op func(a, b int32) int32) (err error) {
	err = st.checkRegister(reg1, reg2, reg3)
	if err != nil {
		return
	}

	st.Register[reg3] = op(st.Register[reg1], st.Register[reg2])
	return
}

// alu2 performs 'reg2 = op(reg1)'.
func (st *State) alu2(reg1, reg2 uint, op func(a int32) int32) (err error) {
	err = st.checkRegister(reg1, reg2)
	if err != nil {
		return
	}

	st.Register[reg2] = op(st.Register[reg1])
	return
}

// divide guards the divisor of Divide and Mod.
func (st *State) divide(reg1, reg2, reg3 uint, op func(a, b int32) int32) (err error) {
	err = st.checkRegister(reg1, reg2, reg3)
	if err != nil {
		return
	}

	if st.Register[reg2] == 0 {
		err = ErrDivisionByZero{Register: reg2, Value: st.Register[reg2]}
		return
	}

	st.Register[reg3] = op(st.Register[reg1], st.Register[reg2])
	return
}

// Add sets 'reg3 = reg1 + reg2'.
func (st *State) Add(reg1, reg2, reg3 uint) error {
	return st.alu3(reg1, reg2, reg3, func(a, b int32) int32 { return a + b })
}

// Subtract sets 'reg3 = reg1 - reg2'.
func (st *State) Subtract(reg1, reg2, reg3 uint) error {
	return st.alu3(reg1, reg2, reg3, func(a, b int32) int32 { return a - b })
}

// Multiply sets 'reg3 = reg1 * reg2'.
func (st *State) Multiply(reg1, reg2, reg3 uint) error {
	return st.alu3(reg1, reg2, reg3, func(a, b int32) int32 { return a * b })
}

// Divide sets 'reg3 = reg1 / reg2', truncating towards zero.
func (st *State) Divide(reg1, reg2, reg3 uint) error {
	return st.divide(reg1, reg2, reg3, func(a, b int32) int32 { return a / b })
}

// Mod sets 'reg3 = reg1 % reg2'. The result takes the sign of reg1.
func (st *State) Mod(reg1, reg2, reg3 uint) error {
	return st.divide(reg1, reg2, reg3, func(a, b int32) int32 { return a % b })
}

// Compare sets 'reg3 = reg1 - reg2'. There are no flags.
func (st *State) Compare(reg1, reg2, reg3 uint) error {
	return st.Subtract(reg1, reg2, reg3)
}

// And sets 'reg3 = reg1 & reg2'.
func (st *State) And(reg1, reg2, reg3 uint) error {
	return st.alu3(reg1, reg2, reg3, func(a, b int32) int32 { return a & b })
}

// Test is And.
func (st *State) Test(reg1, reg2, reg3 uint) error {
	return st.And(reg1, reg2, reg3)
}

// Or sets 'reg3 = reg1 | reg2'.
func (st *State) Or(reg1, reg2, reg3 uint) error {
	return st.alu3(reg1, reg2, reg3, func(a, b int32) int32 { return a | b })
}

// Xor sets 'reg3 = reg1 ^ reg2'.
func (st *State) Xor(reg1, reg2, reg3 uint) error {
	return st.alu3(reg1, reg2, reg3, func(a, b int32) int32 { return a ^ b })
}

// ShiftLeft sets 'reg3 = reg1 << reg2'.
func (st *State) ShiftLeft(reg1, reg2, reg3 uint) error {
	return st.alu3(reg1, reg2, reg3, func(a, b int32) int32 {
		return a << (uint32(b) & SHIFT_MASK)
	})
}

// ShiftRight sets 'reg3 = reg1 >> reg2', sign extending.
func (st *State) ShiftRight(reg1, reg2, reg3 uint) error {
	return st.alu3(reg1, reg2, reg3, func(a, b int32) int32 {
		return a >> (uint32(b) & SHIFT_MASK)
	})
}

// Neg sets 'reg2 = -reg1'.
func (st *State) Neg(reg1, reg2 uint) error {
	return st.alu2(reg1, reg2, func(a int32) int32 { return -a })
}

// Absolute sets 'reg2 = |reg1|'. The absolute value of math.MinInt32 is
// math.MinInt32.
func (st *State) Absolute(reg1, reg2 uint) error {
	return st.alu2(reg1, reg2, func(a int32) int32 {
		if a < 0 {
			return -a
		}
		return a
	})
}

// Not sets 'reg2 = ^reg1'.
func (st *State) Not(reg1, reg2 uint) error {
	return st.alu2(reg1, reg2, func(a int32) int32 { return ^a })
}

// Mov sets 'reg1 = reg2'. The destination is the first operand.
func (st *State) Mov(reg1, reg2 uint) (err error) {
	err = st.checkRegister(reg1, reg2)
	if err != nil {
		return
	}

	st.Register[reg1] = st.Register[reg2]
	return
}

// Increment sets 'reg = reg + 1'.
func (st *State) Increment(reg uint) error {
	return st.alu2(reg, reg, func(a int32) int32 { return a + 1 })
}

// Decrement sets 'reg = reg - 1'.
func (st *State) Decrement(reg uint) error {
	return st.alu2(reg, reg, func(a int32) int32 { return a - 1 })
}

// LoadImmediate sets 'reg = value'.
func (st *State) LoadImmediate(reg uint, value int32) (err error) {
	err = st.checkRegister(reg)
	if err != nil {
		return
	}

	st.Register[reg] = value
	return
}

// Store sets 'memory[addr] = reg'.
func (st *State) Store(reg, addr uint) (err error) {
	err = st.checkRegister(reg)
	if err != nil {
		return
	}
	err = st.checkAddress(addr)
	if err != nil {
		return
	}

	st.Memory[addr] = st.Register[reg]
	return
}

// Load sets 'reg = memory[addr]'.
func (st *State) Load(addr, reg uint) (err error) {
	err = st.checkRegister(reg)
	if err != nil {
		return
	}
	err = st.checkAddress(addr)
	if err != nil {
		return
	}

	st.Register[reg] = st.Memory[addr]
	return
}

// Push writes reg to the stack slot, then moves the stack pointer down.
func (st *State) Push(reg uint) (err error) {
	err = st.checkRegister(reg)
	if err != nil {
		return
	}

	if st.Full() {
		err = ErrStackOverflow{Register: reg}
		return
	}

	st.Memory[st.Sp] = st.Register[reg]
	st.Sp--
	return
}

// Pop moves the stack pointer up, then reads the stack slot into reg.
func (st *State) Pop(reg uint) (err error) {
	err = st.checkRegister(reg)
	if err != nil {
		return
	}

	if st.Empty() {
		err = ErrStackUnderflow{Register: reg}
		return
	}

	st.Sp++
	st.Register[reg] = st.Memory[st.Sp]
	return
}

// Empty returns true if nothing is on the stack.
func (st *State) Empty() bool {
	return st.Sp >= uint(len(st.Memory))-1
}

// Full returns true if a push would overflow.
func (st *State) Full() bool {
	return st.Sp == 0
}

// Stack returns a copy of the active stack, lowest address first.
func (st *State) Stack() []int32 {
	return slices.Clone(st.Memory[st.Sp+1:])
}

// Snapshot copies the registers and active stack.
func (st *State) Snapshot() Snapshot {
	return Snapshot{
		Registers: slices.Clone(st.Register),
		Stack:     st.Stack(),
	}
}

// String returns the current processor state as a string.
func (st *State) String() (text string) {
	for n, val := range st.Register {
		text += fmt.Sprintf("% 5s: %04X_%04X %d\n", fmt.Sprintf("r%d", n),
			uint32(val)>>16, uint32(val)&0xffff, val)
	}

	text += fmt.Sprintf("% 5s: %d\n", "sp", st.Sp)

	stack := "----_----"
	if !st.Empty() {
		val := uint32(st.Memory[st.Sp+1])
		stack = fmt.Sprintf("%04X_%04X", val>>16, val&0xffff)
	}
	text += fmt.Sprintf("% 5s: %v (%d)\n", "stack", stack, len(st.Memory)-1-int(st.Sp))

	return
}
