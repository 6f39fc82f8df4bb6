package mcu

import (
	"fmt"
	"log"

	"github.com/ezrec/pic10/periph"
)

// ClockState is the core clock domain state.
type ClockState int

//go:generate go tool stringer -linecomment -type=ClockState
const (
	CLOCK_RUNNING  = ClockState(0) // running
	CLOCK_SLEEPING = ClockState(1) // sleeping
)

// EventKind classifies the event (if any) a step surfaced.
type EventKind int

//go:generate go tool stringer -linecomment -type=EventKind
const (
	EV_NONE     = EventKind(0) // none
	EV_WAKE     = EventKind(1) // wake
	EV_WATCHDOG = EventKind(2) // watchdog
	EV_RESET    = EventKind(3) // reset
	EV_FAULT    = EventKind(4) // fault
)

// Event reports a state transition or fault surfaced by a step. Code
// carries the offending instruction word for EV_FAULT.
type Event struct {
	Kind EventKind
	Code Code
}

// StepResult is the outcome of a single scheduler step.
type StepResult struct {
	Cycles uint32 // Instruction cycles elapsed.
	Event  Event  // Triggered event, Kind == EV_NONE for most steps.
}

// erasedWord is the contents of unprogrammed flash; it decodes to
// XORLW 0xFF.
const erasedWord = uint16(0xFFF)

// resetCause distinguishes the reset paths for STATUS bookkeeping.
type resetCause int

const (
	resetPOR = resetCause(iota)
	resetWDT
)

// Mcu is the emulation context for one PIC10F20x device. All state is
// owned exclusively by the instance; nothing is shared across instances.
type Mcu struct {
	Verbose bool // Set to enable verbose logging.

	variant Variant
	config  Config

	rom   []uint16 // Program memory, 12-bit words.
	data  DataMemory
	stack Stack

	pc     uint16
	w      uint8
	option uint8 // OPTION latch, not memory mapped.
	clock  ClockState

	prescaler periph.Prescaler
	timer     periph.Timer
	watchdog  periph.Watchdog
	gpio      periph.Gpio

	cycles uint64 // Instruction cycles since reset.
}

// NewMcu creates a device of the given variant and resets it to its
// power-on state. Program memory starts erased.
func NewMcu(variant Variant, config Config) (m *Mcu) {
	m = &Mcu{
		variant: variant,
		config:  config,
		rom:     make([]uint16, variant.FlashWords()),
		data:    DataMemory{variant: variant},
	}

	m.eraseFlash()
	m.Reset()

	return
}

func (m *Mcu) eraseFlash() {
	for n := range m.rom {
		m.rom[n] = erasedWord
	}
}

// LoadProgram flashes an image into program memory starting at address 0.
// The rest of the flash reads as erased. Device state is untouched on
// failure.
func (m *Mcu) LoadProgram(words []uint16) (err error) {
	if len(words) > len(m.rom) {
		err = ErrImageTooLarge
		return
	}
	for _, word := range words {
		if word > 0xFFF {
			err = ErrImageWord
			return
		}
	}

	m.eraseFlash()
	copy(m.rom, words)

	if m.Verbose {
		log.Printf("mcu: flashed %v words", len(words))
	}

	return
}

// Reset performs a power-on reset: registers, stack and peripherals go to
// their documented defaults. Program memory is not cleared.
func (m *Mcu) Reset() {
	if m.Verbose {
		log.Printf("mcu: reset")
	}

	m.reset(resetPOR)
}

func (m *Mcu) reset(cause resetCause) {
	m.data.Reset()
	if cause == resetWDT {
		// A watchdog reset reports itself through a cleared /TO.
		m.data.Write(REG_STATUS, STATUS_POR&^STATUS_TO)
	}

	m.w = 0
	m.pc = m.variant.ResetVector()
	m.option = OPTION_POR
	m.clock = CLOCK_RUNNING
	m.cycles = 0

	m.stack.Reset()
	m.timer.Reset()
	m.watchdog.Clear()
	m.watchdog.Enabled = m.config.WDTE
	m.gpio.Reset()
	m.gpio.SetTris(TRIS_POR)
	m.configurePrescaler()

	// The factory programs the reset vector with MOVLW <calibration>;
	// the first fetch loads W with it and the PC wraps to 0x000.
	m.rom[m.variant.ResetVector()] = uint16(MakeCodeLiteral(OP_MOVLW, OSCCAL_POR))
}

// configurePrescaler applies the OPTION assignment and rate bits to the
// shared prescaler.
func (m *Mcu) configurePrescaler() {
	target := periph.PRESCALE_TIMER
	if m.option&OPTION_PSA != 0 {
		target = periph.PRESCALE_WATCHDOG
	}
	m.prescaler.Configure(target, m.option&OPTION_PS)
}

// Step performs exactly one fetch-decode-execute cycle, advances the
// peripherals by the elapsed cycle count, and reports the cost and any
// triggered event. It never blocks; the whole model is synchronous.
func (m *Mcu) Step() (res StepResult) {
	if m.clock == CLOCK_SLEEPING {
		return m.stepSleeping()
	}

	code := Code(m.rom[m.pc&m.variant.PCMask()])

	if m.Verbose {
		log.Printf("mcu: %03x: %v", m.pc&m.variant.PCMask(), code)
	}

	cycles, event := m.execute(code)

	res.Cycles = cycles
	res.Event = event
	m.cycles += uint64(cycles)

	if m.advance(cycles) {
		// Watchdog timeout while running.
		if m.config.WDTResetOnTimeout {
			m.reset(resetWDT)
			res.Event = Event{Kind: EV_RESET}
		} else {
			m.watchdog.Clear()
			res.Event = Event{Kind: EV_WATCHDOG}
		}
	}

	return
}

// stepSleeping advances the peripherals by one minimal tick; no fetch or
// execution happens until a wake condition fires.
func (m *Mcu) stepSleeping() (res StepResult) {
	res.Cycles = 1
	m.cycles++

	if m.advance(1) {
		// Watchdog timeout during sleep wakes the device.
		if m.config.WDTResetOnWake {
			m.reset(resetWDT)
			res.Event = Event{Kind: EV_RESET}
		} else {
			m.clock = CLOCK_RUNNING
			status := m.data.Read(REG_STATUS)
			m.data.Write(REG_STATUS, status&^STATUS_TO)
			res.Event = Event{Kind: EV_WATCHDOG}
		}
		return
	}

	if m.option&OPTION_GPWU == 0 && m.gpio.Changed() {
		m.clock = CLOCK_RUNNING
		status := m.data.Read(REG_STATUS)
		m.data.Write(REG_STATUS, status|STATUS_GPWUF)
		res.Event = Event{Kind: EV_WAKE}

		if m.Verbose {
			log.Printf("mcu: wake on pin change")
		}
	}

	return
}

// advance moves the peripheral subsystem forward by elapsed instruction
// cycles. It reports a watchdog timeout; the caller decides the policy.
func (m *Mcu) advance(cycles uint32) (timeout bool) {
	toWatchdog := m.prescaler.Target() == periph.PRESCALE_WATCHDOG

	for range cycles {
		// The instruction oscillator stops during sleep; only the
		// watchdog's independent clock keeps ticking.
		if m.clock == CLOCK_RUNNING && m.option&OPTION_T0CS == 0 {
			m.clockTimer()
		}

		if toWatchdog {
			if m.prescaler.Tick() && m.watchdog.Tick() {
				timeout = true
			}
		} else if m.watchdog.Tick() {
			timeout = true
		}
	}

	return
}

// clockTimer feeds one timer-source tick through the shared prescaler
// (or straight to TMR0 when the prescaler belongs to the watchdog).
func (m *Mcu) clockTimer() {
	if m.prescaler.Target() == periph.PRESCALE_TIMER {
		if m.prescaler.Tick() {
			m.timer.Increment()
		}
	} else {
		m.timer.Increment()
	}
}

// ForcePin drives an external level onto a pin. Output-configured pins
// are unaffected. Edges on T0CKI clock TMR0 when OPTION selects the
// external source; input changes are also what wake-on-pin-change samples.
func (m *Mcu) ForcePin(pin int, level bool) (err error) {
	changed, err := m.gpio.Force(pin, level)
	if err != nil || !changed {
		return
	}

	if pin == periph.PIN_T0CKI && m.option&OPTION_T0CS != 0 {
		rising := level
		falling := m.option&OPTION_T0SE != 0
		if rising != falling {
			m.clockTimer()
		}
	}

	return
}

// readFile reads a file register address, applying the SFR read
// semantics: TMR0 reads the live counter, PCL the low program counter
// byte, GPIO the sampled pin state.
func (m *Mcu) readFile(addr uint8) uint8 {
	switch addr & (FILE_COUNT - 1) {
	case REG_TMR0:
		return m.timer.Count()
	case REG_PCL:
		return uint8(m.pc & m.variant.PCMask())
	case REG_GPIO:
		return m.gpio.Read()
	}
	return m.data.Read(addr)
}

// storeFile writes a file register address, applying the SFR write side
// effects. It reports true when the write was a control transfer (PCL).
func (m *Mcu) storeFile(addr uint8, value uint8) (transfer bool) {
	switch addr & (FILE_COUNT - 1) {
	case REG_TMR0:
		m.timer.Load(value)
		if m.prescaler.Target() == periph.PRESCALE_TIMER {
			m.prescaler.Clear()
		}
	case REG_PCL:
		// Writing PCL is a computed jump; bit 8 of the PC is forced
		// clear, so the target always lands in the first 256 words.
		m.pc = uint16(value)
		transfer = true
	case REG_STATUS:
		fixed := m.data.Read(REG_STATUS) & statusFixed
		m.data.Write(REG_STATUS, (value&^statusFixed)|fixed)
	case REG_GPIO:
		m.gpio.Write(value)
	default:
		m.data.Write(addr, value)
	}
	return
}

// Variant returns the emulated family member.
func (m *Mcu) Variant() Variant {
	return m.variant
}

// W returns the accumulator.
func (m *Mcu) W() uint8 {
	return m.w
}

// PC returns the program counter, masked to the variant's width.
func (m *Mcu) PC() uint16 {
	return m.pc & m.variant.PCMask()
}

// Status returns the STATUS register.
func (m *Mcu) Status() uint8 {
	return m.data.Read(REG_STATUS)
}

// Port returns the sampled GPIO port state.
func (m *Mcu) Port() uint8 {
	return m.gpio.Read()
}

// Tris returns the TRIS latch per the configured write-only read policy.
func (m *Mcu) Tris() uint8 {
	if !m.config.WriteOnlyReadsLastWritten {
		return 0
	}
	return m.gpio.Tris()
}

// Option returns the OPTION latch per the configured write-only read
// policy.
func (m *Mcu) Option() uint8 {
	if !m.config.WriteOnlyReadsLastWritten {
		return 0
	}
	return m.option
}

// Timer0 returns the TMR0 counter.
func (m *Mcu) Timer0() uint8 {
	return m.timer.Count()
}

// Clock returns the core clock domain state.
func (m *Mcu) Clock() ClockState {
	return m.clock
}

// StackFrames returns the return stack slots, most recent first.
func (m *Mcu) StackFrames() []uint16 {
	return m.stack.Frames()
}

// Cycles returns the instruction cycles elapsed since the last reset.
func (m *Mcu) Cycles() uint64 {
	return m.cycles
}

// String returns the current device state as a string.
func (m *Mcu) String() (text string) {
	regs := []string{
		"pc", "w", "status", "tmr0", "gpio", "tris", "option",
		"stack", "clock", "cycles",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%03X", m.PC())
		case "w":
			strval = fmt.Sprintf("%02X", m.w)
		case "status":
			strval = fmt.Sprintf("%02X", m.Status())
		case "tmr0":
			strval = fmt.Sprintf("%02X", m.timer.Count())
		case "gpio":
			strval = fmt.Sprintf("%01X", m.gpio.Read())
		case "tris":
			strval = fmt.Sprintf("%01X", m.gpio.Tris())
		case "option":
			strval = fmt.Sprintf("%02X", m.option)
		case "stack":
			for n, frame := range m.stack.Frames() {
				if n > 0 {
					strval += " "
				}
				strval += fmt.Sprintf("%03X", frame)
			}
		case "clock":
			strval = m.clock.String()
		case "cycles":
			strval = fmt.Sprintf("%v", m.cycles)
		}
		text += fmt.Sprintf("% 7s: %v\n", reg, strval)
	}

	return
}
