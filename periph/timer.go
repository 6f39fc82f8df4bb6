package periph

// Timer is the TMR0 free-running 8-bit counter. It wraps 0xFF to 0x00
// silently; this family has no timer overflow flag.
type Timer struct {
	count   uint8
	inhibit bool
}

// Count returns the current TMR0 value.
func (tm *Timer) Count() uint8 {
	return tm.count
}

// Increment advances TMR0 by one divided tick. A Load since the previous
// increment swallows exactly one tick, matching the write-to-TMR0
// synchronization delay of the hardware.
func (tm *Timer) Increment() {
	if tm.inhibit {
		tm.inhibit = false
		return
	}
	tm.count++
}

// Load sets TMR0 to a written value and inhibits the next scheduled
// increment.
func (tm *Timer) Load(value uint8) {
	tm.count = value
	tm.inhibit = true
}

// Reset restores the power-on state.
func (tm *Timer) Reset() {
	tm.count = 0
	tm.inhibit = false
}
