package mcu

import (
	"fmt"
	"iter"
)

// Opcode is one assembled source line: its location, the words it was
// parsed from, and the generated instruction. LinkLabel carries an
// unresolved jump target until the end of the parse.
type Opcode struct {
	LineNo    int
	Addr      int
	Words     []string
	Code      Code
	LinkLabel string
}

// Program is an assembled listing.
type Program struct {
	Opcodes []Opcode
}

// Debug finds the opcode assembled at an address.
func (prog *Program) Debug(addr uint16) (op *Opcode) {
	for n := range prog.Opcodes {
		if uint16(prog.Opcodes[n].Addr) == addr {
			op = &prog.Opcodes[n]
			break
		}
	}

	return
}

// Codes iterates over the assembled instruction words by address.
func (prog *Program) Codes() iter.Seq2[uint16, Code] {
	return func(yield func(addr uint16, code Code) bool) {
		for _, op := range prog.Opcodes {
			if !yield(uint16(op.Addr), op.Code) {
				return
			}
		}
	}
}

// Binary emits the program image, ready for (*Mcu).LoadProgram.
func (prog *Program) Binary() (bins []uint16) {
	for _, code := range prog.Codes() {
		bins = append(bins, uint16(code))
	}

	return
}

// String returns the program listing.
func (prog *Program) String() (text string) {
	for _, op := range prog.Opcodes {
		text += fmt.Sprintf("%03x: %04x  %v\n", op.Addr, uint16(op.Code), op.Code)
	}

	return
}
