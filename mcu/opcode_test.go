package mcu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeTable(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		code Code
		op   Mnemonic
	}){
		{"nop", 0x000, OP_NOP},
		{"option", 0x002, OP_OPTION},
		{"sleep", 0x003, OP_SLEEP},
		{"clrwdt", 0x004, OP_CLRWDT},
		{"tris", 0x006, OP_TRIS},
		{"movwf", 0x030, OP_MOVWF},
		{"clrw", 0x040, OP_CLRW},
		{"clrf", 0x070, OP_CLRF},
		{"subwf_w", 0x090, OP_SUBWF},
		{"subwf_f", 0x0B0, OP_SUBWF},
		{"decf", 0x0D0, OP_DECF},
		{"iorwf", 0x110, OP_IORWF},
		{"andwf", 0x150, OP_ANDWF},
		{"xorwf", 0x190, OP_XORWF},
		{"addwf", 0x1D0, OP_ADDWF},
		{"movf", 0x210, OP_MOVF},
		{"comf", 0x250, OP_COMF},
		{"incf", 0x290, OP_INCF},
		{"decfsz", 0x2D0, OP_DECFSZ},
		{"rrf", 0x310, OP_RRF},
		{"rlf", 0x350, OP_RLF},
		{"swapf", 0x390, OP_SWAPF},
		{"incfsz", 0x3D0, OP_INCFSZ},
		{"bcf", 0x410, OP_BCF},
		{"bsf", 0x5F0, OP_BSF},
		{"btfsc", 0x606, OP_BTFSC},
		{"btfss", 0x7E6, OP_BTFSS},
		{"retlw", 0x834, OP_RETLW},
		{"call", 0x9FF, OP_CALL},
		{"goto_lo", 0xA00, OP_GOTO},
		{"goto_hi", 0xBFF, OP_GOTO},
		{"movlw", 0xCAA, OP_MOVLW},
		{"iorlw", 0xD55, OP_IORLW},
		{"andlw", 0xE0F, OP_ANDLW},
		{"xorlw", 0xFFF, OP_XORLW},
		{"ill_001", 0x001, OP_ILLEGAL},
		{"ill_tris5", 0x005, OP_ILLEGAL},
		{"ill_tris7", 0x007, OP_ILLEGAL},
		{"ill_008", 0x008, OP_ILLEGAL},
		{"ill_01f", 0x01F, OP_ILLEGAL},
		{"ill_041", 0x041, OP_ILLEGAL},
		{"ill_05f", 0x05F, OP_ILLEGAL},
	}

	for _, entry := range table {
		assert.Equal(entry.op, entry.code.Mnemonic(), entry.name)
	}
}

// TestDecodeExhaustive classifies every possible 12-bit pattern: the
// decoder must map each to exactly one mnemonic, deterministically, with
// the reserved encodings called out explicitly.
func TestDecodeExhaustive(t *testing.T) {
	assert := assert.New(t)

	// The complete reserved set of the baseline PIC 12-bit encoding.
	reserved := map[uint16]bool{
		0x001: true,
		0x005: true,
		0x007: true,
	}
	for word := uint16(0x008); word <= 0x01F; word++ {
		reserved[word] = true
	}
	for word := uint16(0x041); word <= 0x05F; word++ {
		reserved[word] = true
	}

	for word := uint16(0); word < 0x1000; word++ {
		code := Code(word)
		op := code.Mnemonic()

		assert.Equal(op, code.Mnemonic(), "deterministic 0x%03x", word)

		if reserved[word] {
			assert.Equal(OP_ILLEGAL, op, "0x%03x", word)
		} else {
			assert.NotEqual(OP_ILLEGAL, op, "0x%03x", word)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	code := MakeCodeFile(OP_ADDWF, 0x12, true)
	assert.Equal(OP_ADDWF, code.Mnemonic())
	assert.Equal(uint8(0x12), code.File())
	assert.True(code.DestFile())

	code = MakeCodeFile(OP_SUBWF, 0x1F, false)
	assert.Equal(OP_SUBWF, code.Mnemonic())
	assert.Equal(uint8(0x1F), code.File())
	assert.False(code.DestFile())

	code = MakeCodeFile(OP_MOVWF, 0x10, true)
	assert.Equal(OP_MOVWF, code.Mnemonic())
	assert.Equal(uint8(0x10), code.File())

	code = MakeCodeBit(OP_BSF, REG_GPIO, 3)
	assert.Equal(OP_BSF, code.Mnemonic())
	assert.Equal(REG_GPIO, code.File())
	assert.Equal(uint8(3), code.Bit())

	code = MakeCodeLiteral(OP_MOVLW, 0xA5)
	assert.Equal(OP_MOVLW, code.Mnemonic())
	assert.Equal(uint8(0xA5), code.Literal())

	code = MakeCodeGoto(0x1AB)
	assert.Equal(OP_GOTO, code.Mnemonic())
	assert.Equal(uint16(0x1AB), code.Target())

	code = MakeCodeLiteral(OP_CALL, 0xCD)
	assert.Equal(OP_CALL, code.Mnemonic())
	assert.Equal(uint8(0xCD), code.Literal())
}

func TestCodeString(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code Code
		text string
	}){
		{0x000, "nop"},
		{0x003, "sleep"},
		{0x006, "tris 6"},
		{0x030, "movwf 0x10"},
		{0x1F2, "addwf 0x12 f"},
		{0x1D2, "addwf 0x12 w"},
		{0x566, "bsf 0x06 3"},
		{0xCA5, "movlw 0xa5"},
		{0xBFF, "goto 0x1ff"},
		{0x005, "ill 0x005"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.code.String())
	}
}
