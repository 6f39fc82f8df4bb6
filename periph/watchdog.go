package periph

const (
	// WDT_PERIOD is the nominal 18ms watchdog period expressed in
	// instruction cycles at the calibrated 1 MIPS internal clock. The
	// real part runs the watchdog from its own RC oscillator; deriving
	// it from the instruction clock keeps the emulation deterministic.
	WDT_PERIOD = 18000
)

// Watchdog is the free-running watchdog counter. Unless it is cleared by
// CLRWDT or SLEEP before reaching its terminal count, it fires a timeout.
type Watchdog struct {
	Enabled bool // WDTE configuration fuse.

	count uint32
}

// Tick advances the watchdog by one tick of its source (one instruction
// cycle, or one prescaler carry when the prescaler is assigned to the
// watchdog). It reports true when the terminal count fires; the counter
// clears itself on timeout.
func (wd *Watchdog) Tick() (timeout bool) {
	if !wd.Enabled {
		return
	}
	wd.count++
	if wd.count >= WDT_PERIOD {
		wd.count = 0
		timeout = true
	}
	return
}

// Clear zeros the watchdog count.
func (wd *Watchdog) Clear() {
	wd.count = 0
}
