package cpu

import (
	"fmt"
)

// Snapshot is the observable processor state at the end of a run.
type Snapshot struct {
	Registers []int32 // Register bank.
	Stack     []int32 // Active stack, lowest address (most recent push) first.
}

// String returns the snapshot in 'Registers: [...]' / 'Stack: [...]' form.
func (snap Snapshot) String() string {
	return fmt.Sprintf("Registers: %v\nStack: %v", snap.Registers, snap.Stack)
}
