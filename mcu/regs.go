package mcu

// Special function register addresses in the file register space.
// Addresses 0x00 and 0x04 hold the indirect addressing registers on
// larger baseline parts; this family has none and they read as zero.
const (
	REG_TMR0   = uint8(0x01) // Timer counter.
	REG_PCL    = uint8(0x02) // Program counter low byte.
	REG_STATUS = uint8(0x03) // Arithmetic and reset status.
	REG_OSCCAL = uint8(0x05) // Oscillator calibration.
	REG_GPIO   = uint8(0x06) // Port data.
	REG_CMCON0 = uint8(0x07) // Comparator control (10F204/206 only).

	FILE_COUNT = 0x20 // 5-bit file register address space.
)

// STATUS register bits.
const (
	STATUS_C     = uint8(1 << 0) // Carry.
	STATUS_DC    = uint8(1 << 1) // Digit carry (out of bit 3).
	STATUS_Z     = uint8(1 << 2) // Zero.
	STATUS_PD    = uint8(1 << 3) // Power-down, active low.
	STATUS_TO    = uint8(1 << 4) // Time-out, active low.
	STATUS_GPWUF = uint8(1 << 7) // Wake-up from pin change.

	// The reset status bits are set by hardware events only; instruction
	// writes to STATUS leave them alone.
	statusFixed = STATUS_PD | STATUS_TO
)

// OPTION register bits.
const (
	OPTION_PS   = uint8(0x07)   // Prescaler rate select.
	OPTION_PSA  = uint8(1 << 3) // Prescaler assigned to WDT when set.
	OPTION_T0SE = uint8(1 << 4) // Timer clocks on falling edge when set.
	OPTION_T0CS = uint8(1 << 5) // Timer clocked from T0CKI pin when set.
	OPTION_GPPU = uint8(1 << 6) // Weak pull-ups disabled when set.
	OPTION_GPWU = uint8(1 << 7) // Wake-on-pin-change disabled when set.
)

// Power-on reset values (data sheet table 4-1).
const (
	STATUS_POR = uint8(0x18) // /TO and /PD set.
	OPTION_POR = uint8(0xFF)
	TRIS_POR   = uint8(0x0F) // All pins input.
	OSCCAL_POR = uint8(0xFE)
	CMCON0_POR = uint8(0xFF)
)

// DataMemory is the file register space: the SFR window plus the general
// purpose registers. Reads and writes of SFRs with side effects (PCL,
// TMR0, GPIO, STATUS) are intercepted by the core before they reach here.
type DataMemory struct {
	variant Variant
	cells   [FILE_COUNT]uint8
}

// implemented reports whether an address decodes to a physical cell.
func (dm *DataMemory) implemented(addr uint8) bool {
	addr &= FILE_COUNT - 1
	switch {
	case addr >= dm.variant.GPRBase():
		return true
	case addr == REG_TMR0, addr == REG_PCL, addr == REG_STATUS,
		addr == REG_OSCCAL, addr == REG_GPIO:
		return true
	case addr == REG_CMCON0:
		return dm.variant.HasComparator()
	}
	return false
}

// Read returns the cell contents. Unimplemented addresses read as zero.
func (dm *DataMemory) Read(addr uint8) uint8 {
	addr &= FILE_COUNT - 1
	if !dm.implemented(addr) {
		return 0
	}
	return dm.cells[addr]
}

// Write stores to a cell. Writes to unimplemented addresses are dropped.
func (dm *DataMemory) Write(addr uint8, value uint8) {
	addr &= FILE_COUNT - 1
	if !dm.implemented(addr) {
		return
	}
	dm.cells[addr] = value
}

// Reset restores the power-on contents of the SFRs and clears the GPRs
// (the hardware leaves GPRs undefined; zero keeps runs reproducible).
func (dm *DataMemory) Reset() {
	clear(dm.cells[:])
	dm.cells[REG_STATUS] = STATUS_POR
	dm.cells[REG_OSCCAL] = OSCCAL_POR
	if dm.variant.HasComparator() {
		dm.cells[REG_CMCON0] = CMCON0_POR
	}
}
