package mcu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzStep(f *testing.F) {
	f.Add(uint16(0x000), uint8(0x00), uint8(0x00))
	f.Add(uint16(0x005), uint8(0xFF), uint8(0x00))
	f.Add(uint16(0xFFF), uint8(0xA5), uint8(0x5A))
	for op := uint16(0); op < 0x1000; op += 0x040 {
		f.Add(op|0x12, uint8(0x80), uint8(0x01))
	}

	f.Fuzz(func(t *testing.T, word uint16, w uint8, file uint8) {
		assert := assert.New(t)

		code := Code(word & 0xFFF)

		// Decode is pure: same word, same mnemonic, printable always.
		op := code.Mnemonic()
		assert.Equal(op, code.Mnemonic())
		assert.NotEmpty(code.String())

		m := NewMcu(PIC10F206, DefaultConfig())
		assert.NoError(m.LoadProgram([]uint16{uint16(code)}))
		m.Reset()
		m.Step() // calibration movlw

		m.w = w
		m.data.Write(0x10, file)

		res := m.Step()

		// Every instruction costs one or two cycles, never more.
		assert.Contains([]uint32{1, 2}, res.Cycles)

		// Only the reserved encodings fault, and they carry the word.
		if op == OP_ILLEGAL {
			assert.Equal(EV_FAULT, res.Event.Kind)
			assert.Equal(code, res.Event.Code)
		} else {
			assert.NotEqual(EV_FAULT, res.Event.Kind)
		}

		// The PC stays within program memory.
		assert.Less(m.PC(), uint16(m.Variant().FlashWords()))

		// The hardware reset status bits never clear from a plain
		// instruction; only SLEEP drops /PD.
		if op != OP_SLEEP {
			assert.Equal(STATUS_PD, m.Status()&STATUS_PD)
		}
		assert.Equal(STATUS_TO, m.Status()&STATUS_TO)
	})
}
