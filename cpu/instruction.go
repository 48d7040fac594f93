package cpu

import (
	"fmt"
)

// Instruction is a single decoded operation. Each opcode reads only the
// fields it needs; the remainder are zero when built with the Make*
// helpers.
type Instruction struct {
	Op        Opcode // Operation tag.
	Reg1      uint   // First register operand.
	Reg2      uint   // Second register operand.
	Reg3      uint   // Third register operand, usually the destination.
	Addr      uint   // Memory address, or program index for branches.
	Immediate int32  // Literal operand.
}

// makeReg3 creates a three-register instruction.
func makeReg3(op Opcode, reg1, reg2, reg3 uint) Instruction {
	return Instruction{Op: op, Reg1: reg1, Reg2: reg2, Reg3: reg3}
}

// makeReg2 creates a two-register instruction.
func makeReg2(op Opcode, reg1, reg2 uint) Instruction {
	return Instruction{Op: op, Reg1: reg1, Reg2: reg2}
}

// MakeNop creates a no-operation.
func MakeNop() Instruction { return Instruction{Op: OP_NOP} }

// MakeHalt creates an end-of-program instruction.
func MakeHalt() Instruction { return Instruction{Op: OP_HALT} }

// MakeAdd creates 'reg3 = reg1 + reg2'.
func MakeAdd(reg1, reg2, reg3 uint) Instruction { return makeReg3(OP_ADD, reg1, reg2, reg3) }

// MakeSub creates 'reg3 = reg1 - reg2'.
func MakeSub(reg1, reg2, reg3 uint) Instruction { return makeReg3(OP_SUB, reg1, reg2, reg3) }

// MakeMul creates 'reg3 = reg1 * reg2'.
func MakeMul(reg1, reg2, reg3 uint) Instruction { return makeReg3(OP_MUL, reg1, reg2, reg3) }

// MakeDiv creates 'reg3 = reg1 / reg2'.
func MakeDiv(reg1, reg2, reg3 uint) Instruction { return makeReg3(OP_DIV, reg1, reg2, reg3) }

// MakeMod creates 'reg3 = reg1 % reg2'.
func MakeMod(reg1, reg2, reg3 uint) Instruction { return makeReg3(OP_MOD, reg1, reg2, reg3) }

// MakeAnd creates 'reg3 = reg1 & reg2'.
func MakeAnd(reg1, reg2, reg3 uint) Instruction { return makeReg3(OP_AND, reg1, reg2, reg3) }

// MakeOr creates 'reg3 = reg1 | reg2'.
func MakeOr(reg1, reg2, reg3 uint) Instruction { return makeReg3(OP_OR, reg1, reg2, reg3) }

// MakeXor creates 'reg3 = reg1 ^ reg2'.
func MakeXor(reg1, reg2, reg3 uint) Instruction { return makeReg3(OP_XOR, reg1, reg2, reg3) }

// MakeTest creates 'reg3 = reg1 & reg2'.
func MakeTest(reg1, reg2, reg3 uint) Instruction { return makeReg3(OP_TEST, reg1, reg2, reg3) }

// MakeShl creates 'reg3 = reg1 << reg2'.
func MakeShl(reg1, reg2, reg3 uint) Instruction { return makeReg3(OP_SHL, reg1, reg2, reg3) }

// MakeShr creates 'reg3 = reg1 >> reg2'.
func MakeShr(reg1, reg2, reg3 uint) Instruction { return makeReg3(OP_SHR, reg1, reg2, reg3) }

// MakeCmp creates 'reg3 = reg1 - reg2'.
func MakeCmp(reg1, reg2, reg3 uint) Instruction { return makeReg3(OP_CMP, reg1, reg2, reg3) }

// MakeNeg creates 'reg2 = -reg1'.
func MakeNeg(reg1, reg2 uint) Instruction { return makeReg2(OP_NEG, reg1, reg2) }

// MakeAbs creates 'reg2 = |reg1|'.
func MakeAbs(reg1, reg2 uint) Instruction { return makeReg2(OP_ABS, reg1, reg2) }

// MakeNot creates 'reg2 = ^reg1'.
func MakeNot(reg1, reg2 uint) Instruction { return makeReg2(OP_NOT, reg1, reg2) }

// MakeMov creates 'dst = src'. Note the destination comes first.
func MakeMov(dst, src uint) Instruction { return makeReg2(OP_MOV, dst, src) }

// MakeStore creates 'memory[addr] = reg'.
func MakeStore(reg, addr uint) Instruction {
	return Instruction{Op: OP_STORE, Reg1: reg, Addr: addr}
}

// MakeLoad creates 'reg = memory[addr]'.
func MakeLoad(addr, reg uint) Instruction {
	return Instruction{Op: OP_LOAD, Reg1: reg, Addr: addr}
}

// MakeLoadImmediate creates 'reg = value'.
func MakeLoadImmediate(reg uint, value int32) Instruction {
	return Instruction{Op: OP_LI, Reg1: reg, Immediate: value}
}

// MakePush creates a push of reg onto the stack.
func MakePush(reg uint) Instruction { return Instruction{Op: OP_PUSH, Reg1: reg} }

// MakePop creates a pop from the stack into reg.
func MakePop(reg uint) Instruction { return Instruction{Op: OP_POP, Reg1: reg} }

// MakeInc creates 'reg = reg + 1'.
func MakeInc(reg uint) Instruction { return Instruction{Op: OP_INC, Reg1: reg} }

// MakeDec creates 'reg = reg - 1'.
func MakeDec(reg uint) Instruction { return Instruction{Op: OP_DEC, Reg1: reg} }

// MakeJmp creates an unconditional jump to program index addr.
func MakeJmp(addr uint) Instruction { return Instruction{Op: OP_JMP, Addr: addr} }

// MakeB creates an unconditional branch, an alias of MakeJmp.
func MakeB(addr uint) Instruction { return Instruction{Op: OP_B, Addr: addr} }

// MakeJz creates a jump to addr taken when reg is zero.
func MakeJz(reg, addr uint) Instruction { return Instruction{Op: OP_JZ, Reg1: reg, Addr: addr} }

// MakeBz is an alias of MakeJz.
func MakeBz(reg, addr uint) Instruction { return Instruction{Op: OP_BZ, Reg1: reg, Addr: addr} }

// MakeJnz creates a jump to addr taken when reg is not zero.
func MakeJnz(reg, addr uint) Instruction { return Instruction{Op: OP_JNZ, Reg1: reg, Addr: addr} }

// MakeBnz is an alias of MakeJnz.
func MakeBnz(reg, addr uint) Instruction { return Instruction{Op: OP_BNZ, Reg1: reg, Addr: addr} }

// MakeJe creates a jump taken when reg1 equals reg2.
// A taken jump resumes at addr+1, not addr.
func MakeJe(reg1, reg2, addr uint) Instruction {
	return Instruction{Op: OP_JE, Reg1: reg1, Reg2: reg2, Addr: addr}
}

// MakeJne creates a jump taken when reg1 differs from reg2.
// A taken jump resumes at addr+1, not addr.
func MakeJne(reg1, reg2, addr uint) Instruction {
	return Instruction{Op: OP_JNE, Reg1: reg1, Reg2: reg2, Addr: addr}
}

// String returns the assembly language representation of this instruction.
func (in Instruction) String() (out string) {
	switch in.Op {
	case OP_NOP, OP_HALT:
		out = in.Op.String()
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_MOD,
		OP_AND, OP_OR, OP_XOR, OP_TEST,
		OP_SHL, OP_SHR, OP_CMP:
		out = fmt.Sprintf("%v r%d r%d r%d", in.Op, in.Reg1, in.Reg2, in.Reg3)
	case OP_NEG, OP_ABS, OP_NOT, OP_MOV:
		out = fmt.Sprintf("%v r%d r%d", in.Op, in.Reg1, in.Reg2)
	case OP_STORE:
		out = fmt.Sprintf("%v r%d [%d]", in.Op, in.Reg1, in.Addr)
	case OP_LOAD:
		out = fmt.Sprintf("%v [%d] r%d", in.Op, in.Addr, in.Reg1)
	case OP_LI:
		out = fmt.Sprintf("%v r%d %d", in.Op, in.Reg1, in.Immediate)
	case OP_PUSH, OP_POP, OP_INC, OP_DEC:
		out = fmt.Sprintf("%v r%d", in.Op, in.Reg1)
	case OP_JMP, OP_B:
		out = fmt.Sprintf("%v @%d", in.Op, in.Addr)
	case OP_JZ, OP_BZ, OP_JNZ, OP_BNZ:
		out = fmt.Sprintf("%v r%d @%d", in.Op, in.Reg1, in.Addr)
	case OP_JE, OP_JNE:
		out = fmt.Sprintf("%v r%d r%d @%d", in.Op, in.Reg1, in.Reg2, in.Addr)
	default:
		out = fmt.Sprintf("%v r%d r%d r%d @%d %d",
			in.Op, in.Reg1, in.Reg2, in.Reg3, in.Addr, in.Immediate)
	}

	return
}
