package mcu

// Variant selects which member of the PIC10F20x family is emulated.
type Variant int

//go:generate go tool stringer -linecomment -type=Variant
const (
	PIC10F200 = Variant(0) // 10f200
	PIC10F202 = Variant(1) // 10f202
	PIC10F204 = Variant(2) // 10f204
	PIC10F206 = Variant(3) // 10f206
)

// FlashWords returns the program memory capacity in 12-bit words.
func (v Variant) FlashWords() int {
	switch v {
	case PIC10F202, PIC10F206:
		return 512
	default:
		return 256
	}
}

// PCMask returns the mask applied to the program counter at fetch.
func (v Variant) PCMask() uint16 {
	return uint16(v.FlashWords() - 1)
}

// ResetVector returns the address the program counter points to after a
// reset: the last word of program memory, which holds the factory
// MOVLW <calibration> instruction.
func (v Variant) ResetVector() uint16 {
	return uint16(v.FlashWords() - 1)
}

// GPRBase returns the first implemented general purpose register address.
// The 512-word parts carry 24 bytes of RAM (0x08..0x1F), the 256-word
// parts 16 bytes (0x10..0x1F).
func (v Variant) GPRBase() uint8 {
	switch v {
	case PIC10F202, PIC10F206:
		return 0x08
	default:
		return 0x10
	}
}

// HasComparator reports whether the variant exposes the CMCON0 register.
// Only the register storage is modeled; the family's analog behavior is
// out of scope.
func (v Variant) HasComparator() bool {
	return v == PIC10F204 || v == PIC10F206
}

// Config holds the configuration word fuses that govern run-time behavior.
type Config struct {
	WDTE bool // Watchdog timer enabled.

	// WDTResetOnWake makes a watchdog timeout during sleep perform a
	// full device reset; when clear the core simply resumes at the
	// instruction after SLEEP.
	WDTResetOnWake bool

	// WDTResetOnTimeout makes a watchdog timeout while running perform
	// a full device reset; when clear the timeout is reported but the
	// core keeps running.
	WDTResetOnTimeout bool

	// WriteOnlyReadsLastWritten selects the observable value of the
	// nominally write-only OPTION and TRIS latches through the snapshot
	// accessors: last-written value when set, zero when clear. Real
	// silicon leaves this part-revision dependent.
	WriteOnlyReadsLastWritten bool
}

// DefaultConfig returns the configuration a blank part ships with:
// watchdog enabled and resetting on timeout, write-only latches reading
// back their last-written value.
func DefaultConfig() Config {
	return Config{
		WDTE:                      true,
		WDTResetOnWake:            true,
		WDTResetOnTimeout:         true,
		WriteOnlyReadsLastWritten: true,
	}
}
