package emulator

// EE core state. This models just enough of the CPU to drive the divide
// units the way the real dispatch loop does: pipe 0 serves DIV/DIVU and
// the LO/HI bank, pipe 1 serves the MMI forms DIV1/DIVU1 and LO1/HI1.
// Instruction words arrive already fetched and decoded from memory; the
// fetch loop and memory system live with the caller
type CPU struct {
	Regs [32]uint32  // General purpose registers. The first value must always be 0
	Lo   uint32      // Pipe 0 quotient bank
	Hi   uint32      // Pipe 0 remainder bank
	Lo1  uint32      // Pipe 1 quotient bank
	Hi1  uint32      // Pipe 1 remainder bank
	Div0 DivPipeline // Pipe 0 divide unit
	Div1 DivPipeline // Pipe 1 divide unit
	Clk  Clock       // Execution time in EE cycles
}

// Creates a new CPU state
func NewCPU() *CPU {
	cpu := &CPU{}

	// initialize registers to 0..32 (the values are not initialized on
	// reset, so we can put some garbage in them. note that the first value
	// should always be zero)
	for i := 0; i < len(cpu.Regs); i++ {
		cpu.Regs[i] = uint32(i)
	}

	return cpu
}

// Puts the core back into the power-on state: garbage registers, empty
// LO/HI banks, both divide units idle, clock at zero
func (cpu *CPU) Reset() {
	for i := 0; i < len(cpu.Regs); i++ {
		cpu.Regs[i] = uint32(i)
	}
	cpu.Regs[0] = 0
	cpu.Lo, cpu.Hi = 0, 0
	cpu.Lo1, cpu.Hi1 = 0, 0
	cpu.Div0.Reset()
	cpu.Div1.Reset()
	cpu.Clk.Reset()
}

// Decodes and executes an instruction, charging the issue cycle (and any
// divide interlock stall) to the clock. Panics if the instruction is
// unhandled
func (cpu *CPU) Execute(instruction Instruction) {
	switch instruction.Opcode() {
	case OP_SPECIAL:
		cpu.executeSpecial(instruction)
	case OP_MMI:
		cpu.executeMmi(instruction)
	case OP_ADDIU:
		cpu.OpADDIU(instruction)
	case OP_ORI:
		cpu.OpORI(instruction)
	case OP_LUI:
		cpu.OpLUI(instruction)
	default:
		panicFmt("cpu: unhandled instruction 0x%x", uint32(instruction))
	}
	cpu.tick(1)
}

func (cpu *CPU) executeSpecial(instruction Instruction) {
	switch instruction.Function() {
	case FN_SLL:
		cpu.OpSLL(instruction)
	case FN_MFHI:
		cpu.OpMFHI(instruction)
	case FN_MTHI:
		cpu.OpMTHI(instruction)
	case FN_MFLO:
		cpu.OpMFLO(instruction)
	case FN_MTLO:
		cpu.OpMTLO(instruction)
	case FN_DIV:
		cpu.OpDIV(instruction)
	case FN_DIVU:
		cpu.OpDIVU(instruction)
	case FN_ADDU:
		cpu.OpADDU(instruction)
	case FN_SUBU:
		cpu.OpSUBU(instruction)
	case FN_OR:
		cpu.OpOR(instruction)
	default:
		panicFmt("cpu: unhandled SPECIAL function 0x%x", instruction.Function())
	}
}

func (cpu *CPU) executeMmi(instruction Instruction) {
	switch instruction.Function() {
	case MMI_MFHI1:
		cpu.OpMFHI1(instruction)
	case MMI_MTHI1:
		cpu.OpMTHI1(instruction)
	case MMI_MFLO1:
		cpu.OpMFLO1(instruction)
	case MMI_MTLO1:
		cpu.OpMTLO1(instruction)
	case MMI_DIV1:
		cpu.OpDIV1(instruction)
	case MMI_DIVU1:
		cpu.OpDIVU1(instruction)
	default:
		panicFmt("cpu: unhandled MMI function 0x%x", instruction.Function())
	}
}

// Advance the clock and both divide units
func (cpu *CPU) tick(cycles uint64) {
	cpu.Clk.Tick(cycles)
	cpu.Div0.Tick(cycles)
	cpu.Div1.Tick(cycles)
}

// Drains pipe 0 into the LO/HI bank. A collect before the latency has
// elapsed stalls the core: the remaining cycles are charged to the clock,
// like the hardware interlock on an early MFLO/MFHI
func (cpu *CPU) collectDiv0() {
	if !cpu.Div0.Busy {
		return
	}
	cpu.tick(cpu.Div0.CyclesRemaining)
	cpu.Lo = cpu.Div0.Finish(&cpu.Hi)
}

// Drains pipe 1 into the LO1/HI1 bank, stalling like collectDiv0
func (cpu *CPU) collectDiv1() {
	if !cpu.Div1.Busy {
		return
	}
	cpu.tick(cpu.Div1.CyclesRemaining)
	cpu.Lo1 = cpu.Div1.Finish(&cpu.Hi1)
}

// Divide (signed, pipe 0)
func (cpu *CPU) OpDIV(instruction Instruction) {
	s := instruction.S()
	t := instruction.T()
	cpu.Div0.Start(cpu.Reg(s), cpu.Reg(t), true)
}

// Divide Unsigned (pipe 0)
func (cpu *CPU) OpDIVU(instruction Instruction) {
	s := instruction.S()
	t := instruction.T()
	cpu.Div0.Start(cpu.Reg(s), cpu.Reg(t), false)
}

// Divide (signed, pipe 1)
func (cpu *CPU) OpDIV1(instruction Instruction) {
	s := instruction.S()
	t := instruction.T()
	cpu.Div1.Start(cpu.Reg(s), cpu.Reg(t), true)
}

// Divide Unsigned (pipe 1)
func (cpu *CPU) OpDIVU1(instruction Instruction) {
	s := instruction.S()
	t := instruction.T()
	cpu.Div1.Start(cpu.Reg(s), cpu.Reg(t), false)
}

// Move From LO
func (cpu *CPU) OpMFLO(instruction Instruction) {
	cpu.collectDiv0()
	cpu.SetReg(instruction.D(), cpu.Lo)
}

// Move From HI
func (cpu *CPU) OpMFHI(instruction Instruction) {
	cpu.collectDiv0()
	cpu.SetReg(instruction.D(), cpu.Hi)
}

// Move From LO1
func (cpu *CPU) OpMFLO1(instruction Instruction) {
	cpu.collectDiv1()
	cpu.SetReg(instruction.D(), cpu.Lo1)
}

// Move From HI1
func (cpu *CPU) OpMFHI1(instruction Instruction) {
	cpu.collectDiv1()
	cpu.SetReg(instruction.D(), cpu.Hi1)
}

// Move To LO. A divide still in flight wins when it is collected, which
// is one deterministic reading of behavior the hardware leaves undefined
func (cpu *CPU) OpMTLO(instruction Instruction) {
	cpu.Lo = cpu.Reg(instruction.S())
}

// Move To HI
func (cpu *CPU) OpMTHI(instruction Instruction) {
	cpu.Hi = cpu.Reg(instruction.S())
}

// Move To LO1
func (cpu *CPU) OpMTLO1(instruction Instruction) {
	cpu.Lo1 = cpu.Reg(instruction.S())
}

// Move To HI1
func (cpu *CPU) OpMTHI1(instruction Instruction) {
	cpu.Hi1 = cpu.Reg(instruction.S())
}

// Add Unsigned (no overflow trap, wraps around)
func (cpu *CPU) OpADDU(instruction Instruction) {
	s := instruction.S()
	t := instruction.T()
	d := instruction.D()
	cpu.SetReg(d, cpu.Reg(s)+cpu.Reg(t))
}

// Subtract Unsigned (no overflow trap, wraps around)
func (cpu *CPU) OpSUBU(instruction Instruction) {
	s := instruction.S()
	t := instruction.T()
	d := instruction.D()
	cpu.SetReg(d, cpu.Reg(s)-cpu.Reg(t))
}

// Bitwise Or
func (cpu *CPU) OpOR(instruction Instruction) {
	s := instruction.S()
	t := instruction.T()
	d := instruction.D()
	cpu.SetReg(d, cpu.Reg(s)|cpu.Reg(t))
}

// Shift Left Logical
func (cpu *CPU) OpSLL(instruction Instruction) {
	t := instruction.T()
	d := instruction.D()
	cpu.SetReg(d, cpu.Reg(t)<<instruction.Shift())
}

// Add Immediate Unsigned (the immediate is sign-extended, "unsigned" only
// means it never traps)
func (cpu *CPU) OpADDIU(instruction Instruction) {
	i := instruction.ImmSE()
	t := instruction.T()
	s := instruction.S()
	cpu.SetReg(t, cpu.Reg(s)+i)
}

// Bitwise Or Immediate
func (cpu *CPU) OpORI(instruction Instruction) {
	i := instruction.Imm()
	t := instruction.T()
	s := instruction.S()
	cpu.SetReg(t, cpu.Reg(s)|i)
}

// Load Upper Immediate
func (cpu *CPU) OpLUI(instruction Instruction) {
	i := instruction.Imm()
	t := instruction.T()

	// low 16 bits are set to 0
	cpu.SetReg(t, i<<16)
}

// Returns the register value at `index`. The first register is always zero
func (cpu *CPU) Reg(index uint32) uint32 {
	return cpu.Regs[index]
}

// Sets the value at the `index` register and sets the first register to zero
func (cpu *CPU) SetReg(index, val uint32) {
	cpu.Regs[index] = val
	// R0 should always remain 0, we can't change it
	cpu.Regs[0] = 0
}
