package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcode_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("nop", OP_NOP.String())
	assert.Equal("li", OP_LI.String())
	assert.Equal("bnz", OP_BNZ.String())
	assert.Equal("halt", OP_HALT.String())
	assert.Equal("Opcode(33)", Opcode(OPCODE_COUNT).String())
	assert.Equal("Opcode(-1)", Opcode(-1).String())
}

func TestOpcode_Valid(t *testing.T) {
	assert := assert.New(t)

	for op := range Opcode(OPCODE_COUNT) {
		assert.True(op.Valid(), op.String())
	}
	assert.False(Opcode(-1).Valid())
	assert.False(Opcode(OPCODE_COUNT).Valid())
}

func TestOpcode_Branch(t *testing.T) {
	assert := assert.New(t)

	branches := map[Opcode]bool{
		OP_JMP: true, OP_B: true,
		OP_JZ: true, OP_BZ: true,
		OP_JNZ: true, OP_BNZ: true,
		OP_JE: true, OP_JNE: true,
	}

	for op := range Opcode(OPCODE_COUNT) {
		assert.Equal(branches[op], op.Branch(), op.String())
	}
}

func TestInstruction_Make(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Instruction{Op: OP_ADD, Reg1: 0, Reg2: 1, Reg3: 2}, MakeAdd(0, 1, 2))
	assert.Equal(Instruction{Op: OP_NEG, Reg1: 3, Reg2: 4}, MakeNeg(3, 4))
	assert.Equal(Instruction{Op: OP_MOV, Reg1: 5, Reg2: 6}, MakeMov(5, 6))
	assert.Equal(Instruction{Op: OP_STORE, Reg1: 1, Addr: 40}, MakeStore(1, 40))
	assert.Equal(Instruction{Op: OP_LOAD, Reg1: 1, Addr: 40}, MakeLoad(40, 1))
	assert.Equal(Instruction{Op: OP_LI, Reg1: 7, Immediate: -9}, MakeLoadImmediate(7, -9))
	assert.Equal(Instruction{Op: OP_JZ, Reg1: 2, Addr: 10}, MakeJz(2, 10))
	assert.Equal(Instruction{Op: OP_JE, Reg1: 1, Reg2: 2, Addr: 3}, MakeJe(1, 2, 3))
	assert.Equal(Instruction{Op: OP_HALT}, MakeHalt())
	assert.Equal(Instruction{}, MakeNop())
}

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		in   Instruction
		text string
	}){
		{MakeNop(), "nop"},
		{MakeHalt(), "halt"},
		{MakeAdd(0, 1, 2), "add r0 r1 r2"},
		{MakeTest(3, 4, 5), "test r3 r4 r5"},
		{MakeAbs(1, 2), "abs r1 r2"},
		{MakeMov(2, 1), "mov r2 r1"},
		{MakeStore(1, 64), "store r1 [64]"},
		{MakeLoad(64, 1), "load [64] r1"},
		{MakeLoadImmediate(0, 10), "li r0 10"},
		{MakeLoadImmediate(0, -10), "li r0 -10"},
		{MakePush(3), "push r3"},
		{MakeDec(3), "dec r3"},
		{MakeB(7), "b @7"},
		{MakeBnz(3, 7), "bnz r3 @7"},
		{MakeJne(1, 2, 0), "jne r1 r2 @0"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.in.String())
	}

	assert.Contains(Instruction{Op: Opcode(99)}.String(), "Opcode(99)")
}
