package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// Program is an ordered, fixed sequence of instructions. The position of an
// instruction is its branch target.
type Program []Instruction

// All iterates over the program's instructions by index.
func (prog Program) All() iter.Seq2[uint, Instruction] {
	return func(yield func(ip uint, in Instruction) bool) {
		for n, in := range prog {
			if !yield(uint(n), in) {
				return
			}
		}
	}
}

// Fetch returns the instruction at ip, and false if ip is past the end.
func (prog Program) Fetch(ip uint) (in Instruction, ok bool) {
	if ip >= uint(len(prog)) {
		return
	}

	return prog[ip], true
}

// Targets returns the program indexes referenced by branch instructions.
func (prog Program) Targets() (targets map[uint]bool) {
	targets = map[uint]bool{}
	for _, in := range prog.All() {
		if in.Op.Branch() {
			targets[in.Addr] = true
		}
	}

	return
}

// String returns a numbered listing, marking branch targets with '>'.
func (prog Program) String() string {
	targets := prog.Targets()

	var sb strings.Builder
	for ip, in := range prog.All() {
		mark := " "
		if targets[ip] {
			mark = ">"
		}
		fmt.Fprintf(&sb, "%s%03d: %v\n", mark, ip, in)
	}

	return sb.String()
}
