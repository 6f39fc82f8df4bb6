package periph

const (
	PIN_COUNT = 4 // GP0..GP3
	PIN_T0CKI = 2 // GP2 doubles as the external timer clock input
	PIN_MCLR  = 3 // GP3 is input-only
)

const pinMask = (1 << PIN_COUNT) - 1

// Gpio models the GPIO port: an output latch, a TRIS direction latch
// (1 = input), and the externally forced level per pin. Output pins read
// back their latch; input pins read back whatever the outside world drives.
type Gpio struct {
	latch  uint8 // output latch, written via the GPIO file register
	tris   uint8 // direction, written via the TRIS instruction
	forced uint8 // externally driven input levels
	snap   uint8 // input levels latched at SLEEP for wake-on-change
}

// Read samples the port: forced level for input-configured pins, output
// latch for output-configured pins.
func (gp *Gpio) Read() uint8 {
	return (gp.forced & gp.tris) | (gp.latch &^ gp.tris)
}

// Write sets the output latch. Writing input-configured bits only updates
// the latch; the level takes effect if the pin is later turned around.
func (gp *Gpio) Write(value uint8) {
	gp.latch = value & pinMask
}

// Latch returns the output latch contents.
func (gp *Gpio) Latch() uint8 {
	return gp.latch
}

// SetTris sets the direction latch. GP3 has no output driver and is forced
// to input.
func (gp *Gpio) SetTris(value uint8) {
	gp.tris = (value | (1 << PIN_MCLR)) & pinMask
}

// Tris returns the direction latch contents.
func (gp *Gpio) Tris() uint8 {
	return gp.tris
}

// Force drives an external level onto a pin. The level is only observable
// while the pin is input-configured. It reports whether the sampled port
// state changed, so the caller can feed edge detection (T0CKI clocking,
// wake-on-change).
func (gp *Gpio) Force(pin int, level bool) (changed bool, err error) {
	if pin < 0 || pin >= PIN_COUNT {
		err = ErrPinRange(pin)
		return
	}

	before := gp.Read()
	if level {
		gp.forced |= 1 << pin
	} else {
		gp.forced &^= 1 << pin
	}
	changed = gp.Read() != before

	return
}

// Level returns the sampled level of a single pin.
func (gp *Gpio) Level(pin int) bool {
	return (gp.Read()>>pin)&1 != 0
}

// LatchInputs records the current input levels. SLEEP arms wake-on-change
// against this snapshot.
func (gp *Gpio) LatchInputs() {
	gp.snap = gp.Read() & gp.tris
}

// Changed reports whether any input-configured pin differs from the
// snapshot taken at LatchInputs.
func (gp *Gpio) Changed() bool {
	return (gp.Read()&gp.tris) != gp.snap
}

// Reset restores the power-on state: all pins input, latch cleared. The
// externally forced levels persist; the outside world does not reset with
// the chip.
func (gp *Gpio) Reset() {
	gp.latch = 0
	gp.tris = pinMask
	gp.snap = 0
}
