package mcu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/pic10/periph"
)

// TestTimerDirect clocks TMR0 straight from the instruction clock: PSA=1
// hands the prescaler to the watchdog, so every cycle increments TMR0.
func TestTimerDirect(t *testing.T) {
	assert := assert.New(t)

	m := testMcu(t, PIC10F200,
		MakeCodeLiteral(OP_MOVLW, 0x08), // T0CS=0, PSA=1
		MakeCodeMisc(OP_OPTION),
		MakeCodeMisc(OP_NOP),
		MakeCodeMisc(OP_NOP),
		MakeCodeMisc(OP_NOP),
	)

	m.Step() // movlw: OPTION still at POR, timer source external
	assert.Equal(uint8(0), m.Timer0())

	m.Step() // option: the new source takes effect this cycle
	assert.Equal(uint8(1), m.Timer0())

	m.Step()
	m.Step()
	m.Step()
	assert.Equal(uint8(4), m.Timer0())
}

// TestTimerPrescaled assigns the prescaler to TMR0 at 1:8 (PS=2) and
// checks the divided increment rate.
func TestTimerPrescaled(t *testing.T) {
	assert := assert.New(t)

	m := testMcu(t, PIC10F200,
		MakeCodeLiteral(OP_MOVLW, 0x02), // T0CS=0, PSA=0, PS=2 -> 1:8
		MakeCodeMisc(OP_OPTION),
	)

	m.Step() // movlw
	m.Step() // option: prescaler tick 1 of 8

	for n := range 7 {
		m.Step() // erased flash executes as xorlw, one cycle each
		if n < 6 {
			assert.Equal(uint8(0), m.Timer0())
		}
	}
	assert.Equal(uint8(1), m.Timer0())

	for range 8 {
		m.Step()
	}
	assert.Equal(uint8(2), m.Timer0())
}

// TestTimerWriteInhibit checks that a write to TMR0 loads the counter and
// swallows exactly one following increment.
func TestTimerWriteInhibit(t *testing.T) {
	assert := assert.New(t)

	m := testMcu(t, PIC10F200,
		MakeCodeLiteral(OP_MOVLW, 0x08), // direct 1:1 timer
		MakeCodeMisc(OP_OPTION),
		MakeCodeLiteral(OP_MOVLW, 0x55),
		MakeCodeFile(OP_MOVWF, REG_TMR0, true),
		MakeCodeMisc(OP_NOP),
		MakeCodeMisc(OP_NOP),
	)

	m.Step() // movlw 0x08
	m.Step() // option
	m.Step() // movlw 0x55

	m.Step() // movwf tmr0: this cycle's increment is inhibited
	assert.Equal(uint8(0x55), m.Timer0())

	m.Step()
	assert.Equal(uint8(0x56), m.Timer0())
	m.Step()
	assert.Equal(uint8(0x57), m.Timer0())
}

// TestTimerWriteClearsPrescaler checks that a TMR0 write also restarts the
// prescaler count when the prescaler is timer-assigned.
func TestTimerWriteClearsPrescaler(t *testing.T) {
	assert := assert.New(t)

	m := testMcu(t, PIC10F200,
		MakeCodeLiteral(OP_MOVLW, 0x02), // PSA=0, PS=2 -> 1:8
		MakeCodeMisc(OP_OPTION),
		MakeCodeMisc(OP_NOP),
		MakeCodeMisc(OP_NOP),
		MakeCodeMisc(OP_NOP),
		MakeCodeLiteral(OP_MOVLW, 0x10),
		MakeCodeFile(OP_MOVWF, REG_TMR0, true),
	)

	for range 7 {
		m.Step()
	}
	assert.Equal(uint8(0x10), m.Timer0())

	// A full prescaler period after the write only pays off the inhibit.
	for range 8 {
		m.Step()
	}
	assert.Equal(uint8(0x10), m.Timer0())

	for range 8 {
		m.Step()
	}
	assert.Equal(uint8(0x11), m.Timer0())
}

// TestTimerExternalClock clocks TMR0 from T0CKI pin edges.
func TestTimerExternalClock(t *testing.T) {
	assert := assert.New(t)

	// POR OPTION has T0CS=1 and T0SE=1: external source, falling edge.
	m := NewMcu(PIC10F200, DefaultConfig())

	assert.NoError(m.ForcePin(periph.PIN_T0CKI, true))
	assert.Equal(uint8(0), m.Timer0())
	assert.NoError(m.ForcePin(periph.PIN_T0CKI, false))
	assert.Equal(uint8(1), m.Timer0())

	// A repeated level is not an edge.
	assert.NoError(m.ForcePin(periph.PIN_T0CKI, false))
	assert.Equal(uint8(1), m.Timer0())

	// Rising edge, prescaler 1:2 on the timer.
	m.w = 0x20 // T0CS=1, T0SE=0, PSA=0, PS=0
	m.execute(MakeCodeMisc(OP_OPTION))

	m.ForcePin(periph.PIN_T0CKI, true) // prescaler 1 of 2
	assert.Equal(uint8(1), m.Timer0())
	m.ForcePin(periph.PIN_T0CKI, false) // falling: ignored
	m.ForcePin(periph.PIN_T0CKI, true)  // prescaler carry
	assert.Equal(uint8(2), m.Timer0())
}

func TestForcePinRange(t *testing.T) {
	assert := assert.New(t)

	m := NewMcu(PIC10F200, DefaultConfig())
	assert.NoError(m.ForcePin(0, true))
	assert.Error(m.ForcePin(-1, true))
	assert.Error(m.ForcePin(periph.PIN_COUNT, true))
}

// runUntilEvent steps until something other than EV_NONE fires.
func runUntilEvent(t *testing.T, m *Mcu, limit int) (steps int, event Event) {
	for steps = 1; steps <= limit; steps++ {
		res := m.Step()
		if res.Event.Kind != EV_NONE {
			event = res.Event
			return
		}
	}
	t.Fatalf("no event within %v steps", limit)
	return
}

// TestWatchdogReset lets the watchdog expire while running and checks the
// device resets with /TO cleared.
func TestWatchdogReset(t *testing.T) {
	assert := assert.New(t)

	m := testMcu(t, PIC10F200,
		MakeCodeLiteral(OP_MOVLW, 0x00), // PSA=0: watchdog undivided
		MakeCodeMisc(OP_OPTION),
	)

	_, event := runUntilEvent(t, m, periph.WDT_PERIOD+16)
	assert.Equal(EV_RESET, event.Kind)

	assert.Equal(m.Variant().ResetVector(), m.PC())
	assert.Equal(uint64(0), m.Cycles())
	assert.Equal(uint8(0), m.Status()&STATUS_TO) // /TO reports the timeout
	assert.NotZero(m.Status() & STATUS_PD)
}

// TestWatchdogClrwdt checks that a timely CLRWDT holds the watchdog off.
func TestWatchdogClrwdt(t *testing.T) {
	assert := assert.New(t)

	m := testMcu(t, PIC10F200,
		MakeCodeLiteral(OP_MOVLW, 0x00),
		MakeCodeMisc(OP_OPTION),
		MakeCodeMisc(OP_CLRWDT), // 2
		MakeCodeGoto(0x002),     // 3
	)

	m.Step() // movlw
	m.Step() // option

	// The loop body costs 3 cycles per pass and clears the watchdog
	// every pass; it must never time out.
	for range periph.WDT_PERIOD {
		res := m.Step()
		assert.Equal(EV_NONE, res.Event.Kind)
	}
	assert.Equal(STATUS_TO, m.Status()&STATUS_TO)
}

func TestWatchdogDisabled(t *testing.T) {
	assert := assert.New(t)

	config := DefaultConfig()
	config.WDTE = false

	m := NewMcu(PIC10F200, config)
	assert.NoError(m.LoadProgram([]uint16{
		uint16(MakeCodeLiteral(OP_MOVLW, 0x00)),
		uint16(MakeCodeMisc(OP_OPTION)),
	}))
	m.Reset()

	for range periph.WDT_PERIOD + 16 {
		res := m.Step()
		assert.Equal(EV_NONE, res.Event.Kind)
	}
}

// TestSleepWakeOnPinChange puts the core to sleep and wakes it with an
// input edge.
func TestSleepWakeOnPinChange(t *testing.T) {
	assert := assert.New(t)

	m := testMcu(t, PIC10F200,
		MakeCodeLiteral(OP_MOVLW, 0x00), // GPWU=0 arms wake-on-change
		MakeCodeMisc(OP_OPTION),
		MakeCodeMisc(OP_SLEEP), // 2
		MakeCodeMisc(OP_NOP),   // 3 (execution resumes here)
	)

	m.Step() // movlw
	m.Step() // option
	res := m.Step() // sleep
	assert.Equal(CLOCK_SLEEPING, m.Clock())
	assert.Equal(EV_NONE, res.Event.Kind)
	assert.Equal(uint8(0), m.Status()&STATUS_PD) // /PD reports power-down
	assert.Equal(STATUS_TO, m.Status()&STATUS_TO)

	// No stimulus: the core stays asleep.
	res = m.Step()
	assert.Equal(EV_NONE, res.Event.Kind)
	assert.Equal(CLOCK_SLEEPING, m.Clock())

	assert.NoError(m.ForcePin(0, true))
	res = m.Step()
	assert.Equal(EV_WAKE, res.Event.Kind)
	assert.Equal(CLOCK_RUNNING, m.Clock())
	assert.Equal(STATUS_GPWUF, m.Status()&STATUS_GPWUF)

	// Execution continues after the SLEEP.
	m.Step()
	assert.Equal(uint16(4), m.PC())
}

// TestSleepWakeDisabled checks that GPWU=1 (the POR default) masks
// wake-on-change.
func TestSleepWakeDisabled(t *testing.T) {
	assert := assert.New(t)

	config := DefaultConfig()
	config.WDTE = false // keep the watchdog out of the picture

	m := NewMcu(PIC10F200, config)
	assert.NoError(m.LoadProgram([]uint16{
		uint16(MakeCodeMisc(OP_SLEEP)),
	}))
	m.Reset()

	m.Step() // calibration movlw
	m.Step() // sleep
	assert.Equal(CLOCK_SLEEPING, m.Clock())

	assert.NoError(m.ForcePin(0, true))
	res := m.Step()
	assert.Equal(EV_NONE, res.Event.Kind)
	assert.Equal(CLOCK_SLEEPING, m.Clock())
}

// TestSleepWatchdogWake lets the watchdog expire during sleep under both
// wake policies.
func TestSleepWatchdogWake(t *testing.T) {
	assert := assert.New(t)

	program := []Code{
		MakeCodeLiteral(OP_MOVLW, 0x80), // PSA=0, GPWU=1
		MakeCodeMisc(OP_OPTION),
		MakeCodeMisc(OP_SLEEP), // 2
		MakeCodeMisc(OP_NOP),   // 3
	}

	// Default policy: a watchdog timeout in sleep resets the device.
	m := testMcu(t, PIC10F200, program...)
	m.Step()
	m.Step()
	m.Step() // sleep

	_, event := runUntilEvent(t, m, periph.WDT_PERIOD+16)
	assert.Equal(EV_RESET, event.Kind)
	assert.Equal(m.Variant().ResetVector(), m.PC())
	assert.Equal(uint8(0), m.Status()&STATUS_TO)

	// Wake-without-reset policy: execution resumes after the SLEEP.
	config := DefaultConfig()
	config.WDTResetOnWake = false

	m = NewMcu(PIC10F200, config)
	words := make([]uint16, 0, len(program))
	for _, code := range program {
		words = append(words, uint16(code))
	}
	assert.NoError(m.LoadProgram(words))
	m.Reset()
	m.Step() // calibration
	m.Step()
	m.Step()
	m.Step() // sleep

	_, event = runUntilEvent(t, m, periph.WDT_PERIOD+16)
	assert.Equal(EV_WATCHDOG, event.Kind)
	assert.Equal(CLOCK_RUNNING, m.Clock())
	assert.Equal(uint8(0), m.Status()&STATUS_TO)
	assert.Equal(uint16(3), m.PC())
}

// TestWatchdogEventPolicy checks the non-reset timeout policy while
// running.
func TestWatchdogEventPolicy(t *testing.T) {
	assert := assert.New(t)

	config := DefaultConfig()
	config.WDTResetOnTimeout = false

	m := NewMcu(PIC10F200, config)
	assert.NoError(m.LoadProgram([]uint16{
		uint16(MakeCodeLiteral(OP_MOVLW, 0x00)),
		uint16(MakeCodeMisc(OP_OPTION)),
	}))
	m.Reset()
	m.Step() // calibration

	_, event := runUntilEvent(t, m, periph.WDT_PERIOD+16)
	assert.Equal(EV_WATCHDOG, event.Kind)
	// No reset: execution carried on past the timeout.
	assert.NotZero(m.Cycles())
}

func TestWriteOnlyReadPolicy(t *testing.T) {
	assert := assert.New(t)

	m := NewMcu(PIC10F200, DefaultConfig())
	assert.Equal(OPTION_POR, m.Option())
	assert.Equal(TRIS_POR, m.Tris())

	config := DefaultConfig()
	config.WriteOnlyReadsLastWritten = false

	m = NewMcu(PIC10F200, config)
	assert.Equal(uint8(0), m.Option())
	assert.Equal(uint8(0), m.Tris())
}

// TestGpioPort drives the port through TRIS and the data latch.
func TestGpioPort(t *testing.T) {
	assert := assert.New(t)

	m := testMcu(t, PIC10F200,
		MakeCodeLiteral(OP_MOVLW, 0x0C), // GP0, GP1 output
		MakeCodeMisc(OP_TRIS),
		MakeCodeLiteral(OP_MOVLW, 0x03),
		MakeCodeFile(OP_MOVWF, REG_GPIO, true),
	)

	m.Step()
	m.Step()
	assert.Equal(uint8(0x0C), m.Tris())

	m.Step()
	m.Step()
	assert.Equal(uint8(0x03), m.Port())

	// GP2 is an input: a forced level shows through, the latch does not.
	assert.NoError(m.ForcePin(2, true))
	assert.Equal(uint8(0x07), m.Port())

	// GP3 cannot be made an output.
	m.w = 0x00
	m.execute(MakeCodeMisc(OP_TRIS))
	assert.Equal(uint8(0x08), m.Tris())
}
