package cpu

import (
	"errors"

	"github.com/ezrec/mdpu/translate"
)

var f = translate.From

var (
	// State construction errors
	ErrRegisterCount = errors.New(f("register count must be positive"))
	ErrMemorySize    = errors.New(f("memory size must be positive"))

	// Instruction decode errors
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))
)

// ErrRegisterOutOfBounds is the fault for a register operand at or past the
// register count.
type ErrRegisterOutOfBounds struct {
	Index uint
}

func (err ErrRegisterOutOfBounds) Error() string {
	return f("register index out of bounds: r%d", err.Index)
}

func (err ErrRegisterOutOfBounds) Is(target error) (ok bool) {
	_, ok = target.(ErrRegisterOutOfBounds)
	return
}

// ErrMemoryOutOfBounds is the fault for a memory operand at or past the
// memory size.
type ErrMemoryOutOfBounds struct {
	Address uint
}

func (err ErrMemoryOutOfBounds) Error() string {
	return f("memory address out of bounds: %d", err.Address)
}

func (err ErrMemoryOutOfBounds) Is(target error) (ok bool) {
	_, ok = target.(ErrMemoryOutOfBounds)
	return
}

// ErrDivisionByZero is the fault for a Div or Mod whose divisor register
// holds zero.
type ErrDivisionByZero struct {
	Register uint
	Value    int32
}

func (err ErrDivisionByZero) Error() string {
	return f("division by zero on r%d of value %d", err.Register, err.Value)
}

func (err ErrDivisionByZero) Is(target error) (ok bool) {
	_, ok = target.(ErrDivisionByZero)
	return
}

// ErrStackOverflow is the fault for a push with no free memory below the
// stack.
type ErrStackOverflow struct {
	Register uint
}

func (err ErrStackOverflow) Error() string {
	return f("stack overflow on r%d", err.Register)
}

func (err ErrStackOverflow) Is(target error) (ok bool) {
	_, ok = target.(ErrStackOverflow)
	return
}

// ErrStackUnderflow is the fault for a pop from an empty stack.
type ErrStackUnderflow struct {
	Register uint
}

func (err ErrStackUnderflow) Error() string {
	return f("stack underflow on r%d", err.Register)
}

func (err ErrStackUnderflow) Is(target error) (ok bool) {
	_, ok = target.(ErrStackUnderflow)
	return
}
