package periph

// PrescalerTarget selects which counter the shared prescaler feeds.
type PrescalerTarget int

//go:generate go tool stringer -linecomment -type=PrescalerTarget
const (
	PRESCALE_TIMER    = PrescalerTarget(0) // tmr0
	PRESCALE_WATCHDOG = PrescalerTarget(1) // wdt
)

// Prescaler is the single shared 8-bit prescaler. The hardware has exactly
// one of these; it divides the tick source for either TMR0 or the watchdog,
// never both at once.
type Prescaler struct {
	target PrescalerTarget
	ratio  uint16 // division ratio, 1:ratio
	count  uint16
}

// Configure assigns the prescaler to a target with a rate select value
// (the PS bits of OPTION, 0..7). The assignment clears the current count.
// Assigned to TMR0 the ratio is 1:2 through 1:256; assigned to the
// watchdog it is 1:1 through 1:128.
func (ps *Prescaler) Configure(target PrescalerTarget, rate uint8) {
	rate &= 0x7
	ps.target = target
	if target == PRESCALE_TIMER {
		ps.ratio = uint16(2) << rate
	} else {
		ps.ratio = uint16(1) << rate
	}
	ps.count = 0
}

// Target returns the counter the prescaler currently feeds.
func (ps *Prescaler) Target() PrescalerTarget {
	return ps.target
}

// Ratio returns the configured division ratio.
func (ps *Prescaler) Ratio() uint16 {
	if ps.ratio == 0 {
		return 1
	}
	return ps.ratio
}

// Tick advances the prescaler by one tick of its source. It reports true
// when the count rolls over (the divided tick reaches the target).
func (ps *Prescaler) Tick() (carry bool) {
	ps.count++
	if ps.count >= ps.Ratio() {
		ps.count = 0
		carry = true
	}
	return
}

// Clear zeros the prescaler count without changing the assignment.
func (ps *Prescaler) Clear() {
	ps.count = 0
}
