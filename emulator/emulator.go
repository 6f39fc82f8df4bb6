// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"encoding/binary"
	"fmt"
	"io"
	"iter"
	"maps"

	"github.com/ezrec/pic10/internal"
	"github.com/ezrec/pic10/mcu"
	"github.com/ezrec/pic10/periph"
)

var _emulator_defines = map[string]string{
	"PIN_COUNT": fmt.Sprintf("%v", periph.PIN_COUNT),
	"T0CKI":     fmt.Sprintf("%v", periph.PIN_T0CKI),
}

// Emulator state: one PIC10F20x device plus the program listing it runs.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*mcu.Mcu              // Reference to the device simulation.
	Program  *mcu.Program // Reference to the currently loaded listing.
}

// NewEmulator creates a new emulator for a variant.
func NewEmulator(variant mcu.Variant, config mcu.Config) (emu *Emulator) {
	emu = &Emulator{
		Mcu:     mcu.NewMcu(variant, config),
		Program: &mcu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines, suitable as
// assembler predefines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	variant := map[string]string{
		"VARIANT":     fmt.Sprintf("%v", int(emu.Mcu.Variant())),
		"FLASH_WORDS": fmt.Sprintf("%v", emu.Mcu.Variant().FlashWords()),
		"GPR_BASE":    fmt.Sprintf("%#v", emu.Mcu.Variant().GPRBase()),
	}

	return internal.IterSeq2Concat(maps.All(_emulator_defines), maps.All(variant))
}

// Reset flashes the current program listing and resets the device.
func (emu *Emulator) Reset() (err error) {
	emu.Mcu.Verbose = emu.Verbose

	err = emu.Mcu.LoadProgram(emu.Program.Binary())
	if err != nil {
		return
	}

	emu.Mcu.Reset()

	return
}

// LoadImage reads a raw program image (16-bit little-endian words, one
// 12-bit instruction per word) and flashes it starting at address 0.
func (emu *Emulator) LoadImage(input io.Reader) (err error) {
	var words []uint16

	for offset := 0; ; offset++ {
		var word uint16
		err = binary.Read(input, binary.LittleEndian, &word)
		if err == io.EOF {
			err = nil
			break
		}
		if err != nil {
			return
		}
		if word > 0xFFF {
			err = &ErrImage{Offset: offset, Err: mcu.ErrImageWord}
			return
		}
		words = append(words, word)
	}

	err = emu.Mcu.LoadProgram(words)
	if err != nil {
		err = &ErrImage{Offset: len(words), Err: err}
	}

	return
}

// LineNo returns the source line number for the executing instruction,
// or 0 if no listing covers it.
func (emu *Emulator) LineNo() (lineno int) {
	op := emu.Program.Debug(emu.Mcu.PC())
	if op != nil {
		lineno = op.LineNo
	}

	return
}

// Run steps the device until an event fires or the step bound is
// reached. It returns the events-free steps executed and the event that
// stopped the run (Kind == EV_NONE on a bound stop).
func (emu *Emulator) Run(maxSteps int) (steps int, event mcu.Event) {
	for steps < maxSteps {
		res := emu.Mcu.Step()
		steps++
		if res.Event.Kind != mcu.EV_NONE {
			event = res.Event
			return
		}
	}

	return
}
