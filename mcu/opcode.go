package mcu

import (
	"fmt"
)

// Code is a single 12-bit instruction word.
type Code uint16

// Mnemonic identifies one decoded instruction of the baseline PIC 12-bit
// instruction set. OP_ILLEGAL covers the reserved encodings; the hardware
// documents no behavior for those and the decoder refuses them rather
// than silently defaulting.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	OP_ILLEGAL = Mnemonic(iota) // ill

	// Miscellaneous
	OP_NOP    // nop
	OP_OPTION // option
	OP_SLEEP  // sleep
	OP_CLRWDT // clrwdt
	OP_TRIS   // tris

	// Byte-oriented file register operations
	OP_MOVWF  // movwf
	OP_CLRW   // clrw
	OP_CLRF   // clrf
	OP_SUBWF  // subwf
	OP_DECF   // decf
	OP_IORWF  // iorwf
	OP_ANDWF  // andwf
	OP_XORWF  // xorwf
	OP_ADDWF  // addwf
	OP_MOVF   // movf
	OP_COMF   // comf
	OP_INCF   // incf
	OP_DECFSZ // decfsz
	OP_RRF    // rrf
	OP_RLF    // rlf
	OP_SWAPF  // swapf
	OP_INCFSZ // incfsz

	// Bit-oriented file register operations
	OP_BCF   // bcf
	OP_BSF   // bsf
	OP_BTFSC // btfsc
	OP_BTFSS // btfss

	// Literal and control operations
	OP_RETLW // retlw
	OP_CALL  // call
	OP_GOTO  // goto
	OP_MOVLW // movlw
	OP_IORLW // iorlw
	OP_ANDLW // andlw
	OP_XORLW // xorlw
)

// Mnemonic classifies the instruction word. Every one of the 4096
// possible 12-bit patterns decodes to exactly one mnemonic; the reserved
// encodings (0x001, 0x005, 0x007, 0x008..0x01F, 0x041..0x05F) decode to
// OP_ILLEGAL. Pure and deterministic.
func (code Code) Mnemonic() Mnemonic {
	word := uint16(code) & 0xFFF

	switch {
	case word == 0x000:
		return OP_NOP
	case word == 0x002:
		return OP_OPTION
	case word == 0x003:
		return OP_SLEEP
	case word == 0x004:
		return OP_CLRWDT
	case word == 0x006:
		// TRIS 5 and TRIS 7 address ports this family does not have;
		// only TRIS GPIO (f=6) is implemented.
		return OP_TRIS
	case word&0xFE0 == 0x020:
		return OP_MOVWF
	case word == 0x040:
		return OP_CLRW
	case word&0xFE0 == 0x060:
		return OP_CLRF
	case word&0xFC0 == 0x080:
		return OP_SUBWF
	case word&0xFC0 == 0x0C0:
		return OP_DECF
	case word&0xFC0 == 0x100:
		return OP_IORWF
	case word&0xFC0 == 0x140:
		return OP_ANDWF
	case word&0xFC0 == 0x180:
		return OP_XORWF
	case word&0xFC0 == 0x1C0:
		return OP_ADDWF
	case word&0xFC0 == 0x200:
		return OP_MOVF
	case word&0xFC0 == 0x240:
		return OP_COMF
	case word&0xFC0 == 0x280:
		return OP_INCF
	case word&0xFC0 == 0x2C0:
		return OP_DECFSZ
	case word&0xFC0 == 0x300:
		return OP_RRF
	case word&0xFC0 == 0x340:
		return OP_RLF
	case word&0xFC0 == 0x380:
		return OP_SWAPF
	case word&0xFC0 == 0x3C0:
		return OP_INCFSZ
	case word&0xF00 == 0x400:
		return OP_BCF
	case word&0xF00 == 0x500:
		return OP_BSF
	case word&0xF00 == 0x600:
		return OP_BTFSC
	case word&0xF00 == 0x700:
		return OP_BTFSS
	case word&0xF00 == 0x800:
		return OP_RETLW
	case word&0xF00 == 0x900:
		return OP_CALL
	case word&0xE00 == 0xA00:
		return OP_GOTO
	case word&0xF00 == 0xC00:
		return OP_MOVLW
	case word&0xF00 == 0xD00:
		return OP_IORLW
	case word&0xF00 == 0xE00:
		return OP_ANDLW
	case word&0xF00 == 0xF00:
		return OP_XORLW
	}

	return OP_ILLEGAL
}

// File returns the 5-bit file register operand.
func (code Code) File() uint8 {
	return uint8(code) & 0x1F
}

// DestFile reports whether the result is written back to the file
// register (d=1) rather than to W (d=0).
func (code Code) DestFile() bool {
	return code&0x020 != 0
}

// Bit returns the 3-bit bit-index operand of the bit-oriented operations.
func (code Code) Bit() uint8 {
	return uint8(code>>5) & 0x7
}

// Literal returns the 8-bit literal operand.
func (code Code) Literal() uint8 {
	return uint8(code)
}

// Target returns the 9-bit GOTO target. CALL targets use Literal; the
// hardware forces bit 8 of the program counter clear on CALL.
func (code Code) Target() uint16 {
	return uint16(code) & 0x1FF
}

// MakeCodeMisc builds a zero-operand instruction word.
func MakeCodeMisc(op Mnemonic) Code {
	switch op {
	case OP_OPTION:
		return 0x002
	case OP_SLEEP:
		return 0x003
	case OP_CLRWDT:
		return 0x004
	case OP_TRIS:
		return 0x006
	case OP_CLRW:
		return 0x040
	default:
		return 0x000 // nop
	}
}

// fileBase maps the byte-oriented mnemonics with a destination bit to
// their fixed opcode bits.
var fileBase = map[Mnemonic]Code{
	OP_SUBWF:  0x080,
	OP_DECF:   0x0C0,
	OP_IORWF:  0x100,
	OP_ANDWF:  0x140,
	OP_XORWF:  0x180,
	OP_ADDWF:  0x1C0,
	OP_MOVF:   0x200,
	OP_COMF:   0x240,
	OP_INCF:   0x280,
	OP_DECFSZ: 0x2C0,
	OP_RRF:    0x300,
	OP_RLF:    0x340,
	OP_SWAPF:  0x380,
	OP_INCFSZ: 0x3C0,
}

// MakeCodeFile builds a byte-oriented instruction word. destFile selects
// write-back to the file register instead of W.
func MakeCodeFile(op Mnemonic, file uint8, destFile bool) Code {
	code := Code(file & 0x1F)
	switch op {
	case OP_MOVWF:
		return 0x020 | code
	case OP_CLRF:
		return 0x060 | code
	}
	if destFile {
		code |= 0x020
	}
	return fileBase[op] | code
}

// MakeCodeBit builds a bit-oriented instruction word.
func MakeCodeBit(op Mnemonic, file uint8, bit uint8) Code {
	code := Code(file&0x1F) | Code(bit&0x7)<<5
	switch op {
	case OP_BCF:
		return 0x400 | code
	case OP_BSF:
		return 0x500 | code
	case OP_BTFSC:
		return 0x600 | code
	default:
		return 0x700 | code // btfss
	}
}

// MakeCodeLiteral builds a literal-operand instruction word.
func MakeCodeLiteral(op Mnemonic, k uint8) Code {
	code := Code(k)
	switch op {
	case OP_RETLW:
		return 0x800 | code
	case OP_CALL:
		return 0x900 | code
	case OP_IORLW:
		return 0xD00 | code
	case OP_ANDLW:
		return 0xE00 | code
	case OP_XORLW:
		return 0xF00 | code
	default:
		return 0xC00 | code // movlw
	}
}

// MakeCodeGoto builds a GOTO instruction word with a 9-bit target.
func MakeCodeGoto(target uint16) Code {
	return 0xA00 | Code(target&0x1FF)
}

// String returns the assembly language representation of the instruction.
func (code Code) String() (out string) {
	op := code.Mnemonic()

	switch op {
	case OP_ILLEGAL:
		out = fmt.Sprintf("ill 0x%03x", uint16(code)&0xFFF)
	case OP_NOP, OP_OPTION, OP_SLEEP, OP_CLRWDT, OP_CLRW:
		out = op.String()
	case OP_TRIS:
		out = fmt.Sprintf("%v %v", op, code.File())
	case OP_MOVWF, OP_CLRF:
		out = fmt.Sprintf("%v 0x%02x", op, code.File())
	case OP_BCF, OP_BSF, OP_BTFSC, OP_BTFSS:
		out = fmt.Sprintf("%v 0x%02x %v", op, code.File(), code.Bit())
	case OP_RETLW, OP_CALL, OP_MOVLW, OP_IORLW, OP_ANDLW, OP_XORLW:
		out = fmt.Sprintf("%v 0x%02x", op, code.Literal())
	case OP_GOTO:
		out = fmt.Sprintf("%v 0x%03x", op, code.Target())
	default:
		dst := "f"
		if !code.DestFile() {
			dst = "w"
		}
		out = fmt.Sprintf("%v 0x%02x %v", op, code.File(), dst)
	}

	return
}
