package emulator

import "math"

// Number of CPU cycles a divide holds its pipe busy after issue. The EE
// reserves the unit for the full count regardless of the operand values,
// and all four instruction forms (DIV, DIVU, DIV1, DIVU1) share it
const DIV_LATENCY uint64 = 37

// One of the EE's pipelined integer divide units. The dispatch loop issues
// a division with Start, keeps executing other instructions while driving
// Tick, and collects the quotient and remainder with Finish once the
// latency has elapsed. The unit holds at most one division in flight:
// issuing another Start while busy silently discards the previous one,
// exactly like the real hardware (the old LO/HI values are lost, no
// exception is raised)
type DivPipeline struct {
	Busy            bool   // true from Start until the result is consumed or overwritten
	CyclesRemaining uint64 // cycles left until LO/HI are architecturally visible

	// Operands captured at Start. The pipeline is blind to anything the
	// caller does with its registers afterwards
	dividend uint32
	divisor  uint32
	signed   bool

	// Result computed at Start. The hardware computes eagerly too, it only
	// gates visibility on the countdown
	quotient  uint32
	remainder uint32
}

// Returns a new idle DivPipeline
func NewDivPipeline() *DivPipeline {
	return &DivPipeline{}
}

// Issues a division. Records the operands, marks the unit busy and resets
// the countdown to DIV_LATENCY. The divisor may be zero (see divResult).
// Any previous in-flight division is overwritten without an error
func (div *DivPipeline) Start(dividend, divisor uint32, signed bool) {
	div.dividend = dividend
	div.divisor = divisor
	div.signed = signed
	div.quotient, div.remainder = divResult(dividend, divisor, signed)
	div.Busy = true
	div.CyclesRemaining = DIV_LATENCY
}

// Advances the unit by `cycles`. The owning dispatch loop drives time,
// the pipeline never reads a clock of its own
func (div *DivPipeline) Tick(cycles uint64) {
	if cycles >= div.CyclesRemaining {
		div.CyclesRemaining = 0
		return
	}
	div.CyclesRemaining -= cycles
}

// Returns true if an in-flight division has waited out its latency
func (div *DivPipeline) Ready() bool {
	return div.Busy && div.CyclesRemaining == 0
}

// Collects the result of the division issued by the last Start: writes the
// remainder through the pointer and returns the quotient, then marks the
// unit idle. Calling Finish before the latency has elapsed stalls like the
// hardware interlock: the remaining cycles are drained here and the result
// is the one captured at Start, so an early Finish returns exactly what a
// patient one would. Callers that account for time should charge
// CyclesRemaining to their clock before finishing early.
// Panics if no division is in flight or if `remainder` is nil, both are
// caller contract violations
func (div *DivPipeline) Finish(remainder *uint32) uint32 {
	if !div.Busy {
		panic("div: Finish without a division in flight")
	}
	if remainder == nil {
		panic("div: Finish needs somewhere to put the remainder")
	}
	div.Busy = false
	div.CyclesRemaining = 0
	*remainder = div.remainder
	return div.quotient
}

// Start immediately followed by Finish, for callers that have no work to
// overlap with the division. Bit-identical to the split form
func (div *DivPipeline) Divide(dividend, divisor uint32, signed bool, remainder *uint32) uint32 {
	div.Start(dividend, divisor, signed)
	return div.Finish(remainder)
}

// Returns the unit to its power-on state, discarding any in-flight division
func (div *DivPipeline) Reset() {
	*div = DivPipeline{}
}

// Computes the quotient and remainder the divider leaves in LO/HI.
//
// Signed division truncates toward zero and the remainder takes the
// dividend's sign. Two special cases come straight from the hardware:
//
//   - INT_MIN / -1 yields quotient INT_MIN, remainder 0. The quotient does
//     not fit in 32 bits; the divider wraps instead of trapping
//   - a zero divisor never faults. LO/HI take the conventional values the
//     R3000/R5900 family leaves behind: quotient 0xffffffff (or 1 for a
//     negative signed dividend), remainder = dividend
func divResult(dividend, divisor uint32, signed bool) (quotient, remainder uint32) {
	if divisor == 0 {
		if signed && int32(dividend) < 0 {
			return 1, dividend
		}
		return 0xffffffff, dividend
	}

	if signed {
		n := int32(dividend)
		d := int32(divisor)
		if n == math.MinInt32 && d == -1 {
			return uint32(n), 0
		}
		return uint32(n / d), uint32(n % d)
	}

	return dividend / divisor, dividend % divisor
}
