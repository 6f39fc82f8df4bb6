package mcu

import (
	"errors"

	"github.com/ezrec/pic10/translate"
)

var f = translate.From

var (
	// Program load errors
	ErrImageTooLarge = errors.New(f("image exceeds program memory"))
	ErrImageWord     = errors.New(f("image word exceeds 12 bits"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrOperandExtra    = errors.New(f("excessive operands"))
	ErrOperandRange    = errors.New(f("operand out of range"))
	ErrDestInvalid     = errors.New(f("destination must be w or f"))
)

// ErrIllegal is raised when the decoder classifies an instruction word as
// one of the reserved encodings.
type ErrIllegal Code

func (ei ErrIllegal) Error() string {
	return f("illegal opcode 0x%03x", uint16(ei)&0xFFF)
}

func (ei ErrIllegal) Is(err error) (ok bool) {
	_, ok = err.(ErrIllegal)
	return
}

// ErrMnemonicUnknown names an unrecognized assembler mnemonic.
type ErrMnemonicUnknown string

func (err ErrMnemonicUnknown) Error() string {
	return f("'%v' is not an instruction", string(err))
}

// ErrLabelMissing names an unresolved jump label.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrParseNumber names a word that did not parse as a number.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrParseExpression names a $(...) expression that did not evaluate.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax locates an assembler error in its source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
