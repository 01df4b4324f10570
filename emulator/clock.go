package emulator

// Keeps track of the emulation time. It is measured in cycles of the EE
// core clock; the dispatch loop advances it, nothing here reads a wall
// clock
type Clock struct {
	Cycles uint64 // Current execution time
}

// Advance the current time by `cycles`
func (clk *Clock) Tick(cycles uint64) {
	clk.Cycles += cycles
}

// Rewind the clock to the power-on state
func (clk *Clock) Reset() {
	clk.Cycles = 0
}
