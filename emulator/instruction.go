package emulator

type Instruction uint32

// Major opcodes (bits [31:26])
const (
	OP_SPECIAL uint32 = 0x00 // Register-to-register encodings, selected by Function()
	OP_ADDIU   uint32 = 0x09 // Add Immediate Unsigned
	OP_ORI     uint32 = 0x0d // Bitwise Or Immediate
	OP_LUI     uint32 = 0x0f // Load Upper Immediate
	OP_MMI     uint32 = 0x1c // EE multimedia encodings, home of the pipe 1 divide family
)

// SPECIAL functions (bits [5:0])
const (
	FN_SLL  uint32 = 0x00 // Shift Left Logical (SLL r0, r0, 0 is the canonical NOP)
	FN_MFHI uint32 = 0x10 // Move From HI
	FN_MTHI uint32 = 0x11 // Move To HI
	FN_MFLO uint32 = 0x12 // Move From LO
	FN_MTLO uint32 = 0x13 // Move To LO
	FN_DIV  uint32 = 0x1a // Divide (signed, pipe 0)
	FN_DIVU uint32 = 0x1b // Divide Unsigned (pipe 0)
	FN_ADDU uint32 = 0x21 // Add Unsigned
	FN_SUBU uint32 = 0x23 // Subtract Unsigned
	FN_OR   uint32 = 0x25 // Bitwise Or
)

// MMI functions (bits [5:0]). The pipe 1 divide family mirrors the SPECIAL
// encodings under the MMI opcode
const (
	MMI_MFHI1 uint32 = 0x10 // Move From HI1
	MMI_MTHI1 uint32 = 0x11 // Move To HI1
	MMI_MFLO1 uint32 = 0x12 // Move From LO1
	MMI_MTLO1 uint32 = 0x13 // Move To LO1
	MMI_DIV1  uint32 = 0x1a // Divide (signed, pipe 1)
	MMI_DIVU1 uint32 = 0x1b // Divide Unsigned (pipe 1)
)

// Return the major opcode in bits [31:26]
func (op Instruction) Opcode() uint32 {
	return uint32(op) >> 26
}

// Return the function field in bits [5:0]
func (op Instruction) Function() uint32 {
	return uint32(op) & 0x3f
}

// Return register index in bits [25:21]
func (op Instruction) S() uint32 {
	return (uint32(op) >> 21) & 0x1f
}

// Return register index in bits [20:16]
func (op Instruction) T() uint32 {
	return (uint32(op) >> 16) & 0x1f
}

// Return register index in bits [15:11]
func (op Instruction) D() uint32 {
	return (uint32(op) >> 11) & 0x1f
}

// Return immediate value in bits [15:0]
func (op Instruction) Imm() uint32 {
	return uint32(op) & 0xffff
}

// Return immediate value in bits [15:0] as a sign-extended 32 bit value
func (op Instruction) ImmSE() uint32 {
	v := int16(uint32(op) & 0xffff)
	return uint32(v)
}

// Shift amounts are stored in bits [10:6]
func (op Instruction) Shift() uint32 {
	return (uint32(op) >> 6) & 0x1f
}
