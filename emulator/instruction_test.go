package emulator

import "testing"

func TestInstructionFields(t *testing.T) {
	assert := func(got, want uint32, what string) {
		if got != want {
			t.Errorf("%s: expected 0x%x, got 0x%x", what, want, got)
		}
	}

	// div $a0, $a1 -> 000000 00100 00101 00000 00000 011010
	op := Instruction(0x0085001a)
	assert(op.Opcode(), OP_SPECIAL, "opcode")
	assert(op.Function(), FN_DIV, "function")
	assert(op.S(), 4, "s")
	assert(op.T(), 5, "t")

	// divu1 $a2, $a3 -> 011100 00110 00111 00000 00000 011011
	op = Instruction(0x70c7001b)
	assert(op.Opcode(), OP_MMI, "opcode")
	assert(op.Function(), MMI_DIVU1, "function")
	assert(op.S(), 6, "s")
	assert(op.T(), 7, "t")

	// mflo $t0 -> 000000 00000 00000 01000 00000 010010
	op = Instruction(0x00004012)
	assert(op.Opcode(), OP_SPECIAL, "opcode")
	assert(op.Function(), FN_MFLO, "function")
	assert(op.D(), 8, "d")

	// sll $t1, $t2, 4
	op = Instruction(0x000a4900)
	assert(op.Function(), FN_SLL, "function")
	assert(op.T(), 10, "t")
	assert(op.D(), 9, "d")
	assert(op.Shift(), 4, "shift")
}

func TestImmediateSignExtension(t *testing.T) {
	// addiu $v0, $r0, -1
	op := Instruction(0x2402ffff)
	if op.Imm() != 0xffff {
		t.Errorf("expected raw immediate 0xffff, got 0x%x", op.Imm())
	}
	if op.ImmSE() != 0xffffffff {
		t.Errorf("expected sign-extended 0xffffffff, got 0x%x", op.ImmSE())
	}

	// ori $v0, $r0, 0x8000 does not sign-extend in the handler, but the
	// accessor always does
	op = Instruction(0x34028000)
	if op.ImmSE() != 0xffff8000 {
		t.Errorf("expected sign-extended 0xffff8000, got 0x%x", op.ImmSE())
	}
}
