package cpu

// Opcode is the operation tag of an instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP   = Opcode(0)  // nop
	OP_ADD   = Opcode(1)  // add
	OP_SUB   = Opcode(2)  // sub
	OP_MUL   = Opcode(3)  // mul
	OP_DIV   = Opcode(4)  // div
	OP_STORE = Opcode(5)  // store
	OP_LOAD  = Opcode(6)  // load
	OP_LI    = Opcode(7)  // li
	OP_PUSH  = Opcode(8)  // push
	OP_POP   = Opcode(9)  // pop
	OP_JMP   = Opcode(10) // jmp
	OP_JZ    = Opcode(11) // jz
	OP_JNZ   = Opcode(12) // jnz
	OP_MOV   = Opcode(13) // mov
	OP_JE    = Opcode(14) // je
	OP_JNE   = Opcode(15) // jne
	OP_AND   = Opcode(16) // and
	OP_OR    = Opcode(17) // or
	OP_XOR   = Opcode(18) // xor
	OP_NOT   = Opcode(19) // not
	OP_SHL   = Opcode(20) // shl
	OP_SHR   = Opcode(21) // shr
	OP_CMP   = Opcode(22) // cmp
	OP_TEST  = Opcode(23) // test
	OP_B     = Opcode(24) // b
	OP_BZ    = Opcode(25) // bz
	OP_BNZ   = Opcode(26) // bnz
	OP_NEG   = Opcode(27) // neg
	OP_ABS   = Opcode(28) // abs
	OP_MOD   = Opcode(29) // mod
	OP_INC   = Opcode(30) // inc
	OP_DEC   = Opcode(31) // dec
	OP_HALT  = Opcode(32) // halt

	OPCODE_COUNT = 33 // Number of defined opcodes.
)

// Valid returns true if the opcode is a defined operation.
func (op Opcode) Valid() bool {
	return op >= OP_NOP && op < OPCODE_COUNT
}

// Branch returns true if the opcode may redirect the instruction pointer.
func (op Opcode) Branch() bool {
	switch op {
	case OP_JMP, OP_B, OP_JZ, OP_BZ, OP_JNZ, OP_BNZ, OP_JE, OP_JNE:
		return true
	}
	return false
}
