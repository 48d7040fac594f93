package emulator

import (
	"github.com/ezrec/mdpu/cpu"
	"github.com/ezrec/mdpu/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime fault.
type ErrRuntime struct {
	Ip          uint            // Instruction pointer of the faulting instruction.
	Instruction cpu.Instruction // The faulting instruction.
	Err         error           // Underlying fault.
}

func (err *ErrRuntime) Error() string {
	return f("ip %d '%v' %v", err.Ip, err.Instruction, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrBudgetExceeded is the fault for a run that reached its instruction
// budget before halting or leaving the program.
type ErrBudgetExceeded struct {
	Limit uint
}

func (err ErrBudgetExceeded) Error() string {
	return f("maximum instruction count %d exceeded, possible infinite loop", err.Limit)
}

func (err ErrBudgetExceeded) Is(target error) (ok bool) {
	_, ok = target.(ErrBudgetExceeded)
	return
}
