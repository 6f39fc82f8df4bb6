// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package mcu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates: the special function register addresses and
// the STATUS bit numbers.
var sysEquate = map[string]string{
	"LINENO": "0",
	"TMR0":   fmt.Sprintf("%#v", REG_TMR0),
	"PCL":    fmt.Sprintf("%#v", REG_PCL),
	"STATUS": fmt.Sprintf("%#v", REG_STATUS),
	"OSCCAL": fmt.Sprintf("%#v", REG_OSCCAL),
	"GPIO":   fmt.Sprintf("%#v", REG_GPIO),
	"CMCON0": fmt.Sprintf("%#v", REG_CMCON0),
	"C":      "0",
	"DC":     "1",
	"Z":      "2",
}

// Assembler is a single pass assembler for the baseline PIC 12-bit
// instruction set, with labels, equates, and compile-time $(...)
// expression evaluation.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of jump labels to addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// mnemonicMap maps source mnemonics to their Mnemonic.
var mnemonicMap = map[string]Mnemonic{}

func init() {
	for op := OP_NOP; op <= OP_XORLW; op++ {
		mnemonicMap[op.String()] = op
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value uint16, err error) {
	v64, err := strconv.ParseInt(word, 0, 16)
	if err != nil || v64 < 0 || v64 > 0xFFF {
		err = ErrParseNumber(word)
		return
	}
	value = uint16(v64)

	return
}

// parenEval does compile-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string) (value uint16, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value16 uint16
		value16, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt(int(value16))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint16(st_int64)
	return
}

// parseLine expands a single line into opcode words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	re := regexp.MustCompile(`'\\?[^']'`)
	line = re.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			switch str[1:] {
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			case "\\":
				str = "\\"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	re = regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	for _, single := range strings.Fields(line) {
		words = append(words, single)
	}

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentAddr()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	return
}

// fileOperand parses a file register operand.
func (asm *Assembler) fileOperand(word string) (file uint8, err error) {
	value, err := asm.valueOf(word)
	if err != nil {
		return
	}
	if value >= FILE_COUNT {
		err = ErrOperandRange
		return
	}
	file = uint8(value)

	return
}

// parseWords assembles one opcode from its expanded words.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	op, ok := mnemonicMap[words[0]]
	if !ok {
		err = ErrMnemonicUnknown(words[0])
		return
	}

	opcode := Opcode{
		LineNo: lineno,
		Addr:   asm.currentAddr(),
		Words:  words,
	}
	args := words[1:]

	switch op {
	case OP_NOP, OP_OPTION, OP_SLEEP, OP_CLRWDT, OP_CLRW:
		if len(args) != 0 {
			err = ErrOperandExtra
			return
		}
		opcode.Code = MakeCodeMisc(op)

	case OP_TRIS:
		// Only TRIS GPIO exists on this family; the operand is
		// optional and checked when present.
		if len(args) > 1 {
			err = ErrOperandExtra
			return
		}
		if len(args) == 1 {
			var file uint8
			file, err = asm.fileOperand(args[0])
			if err != nil {
				return
			}
			if file != REG_GPIO {
				err = ErrOperandRange
				return
			}
		}
		opcode.Code = MakeCodeMisc(op)

	case OP_MOVWF, OP_CLRF:
		if len(args) != 1 {
			err = ErrOperandMissing
			return
		}
		var file uint8
		file, err = asm.fileOperand(args[0])
		if err != nil {
			return
		}
		opcode.Code = MakeCodeFile(op, file, true)

	case OP_SUBWF, OP_DECF, OP_IORWF, OP_ANDWF, OP_XORWF, OP_ADDWF,
		OP_MOVF, OP_COMF, OP_INCF, OP_DECFSZ, OP_RRF, OP_RLF,
		OP_SWAPF, OP_INCFSZ:
		if len(args) < 1 {
			err = ErrOperandMissing
			return
		}
		if len(args) > 2 {
			err = ErrOperandExtra
			return
		}
		var file uint8
		file, err = asm.fileOperand(args[0])
		if err != nil {
			return
		}
		destFile := true
		if len(args) == 2 {
			switch args[1] {
			case "f", "1":
				destFile = true
			case "w", "0":
				destFile = false
			default:
				err = ErrDestInvalid
				return
			}
		}
		opcode.Code = MakeCodeFile(op, file, destFile)

	case OP_BCF, OP_BSF, OP_BTFSC, OP_BTFSS:
		if len(args) != 2 {
			err = ErrOperandMissing
			return
		}
		var file uint8
		file, err = asm.fileOperand(args[0])
		if err != nil {
			return
		}
		var bit uint16
		bit, err = asm.valueOf(args[1])
		if err != nil {
			return
		}
		if bit > 7 {
			err = ErrOperandRange
			return
		}
		opcode.Code = MakeCodeBit(op, file, uint8(bit))

	case OP_RETLW, OP_MOVLW, OP_IORLW, OP_ANDLW, OP_XORLW:
		if len(args) != 1 {
			err = ErrOperandMissing
			return
		}
		var k uint16
		k, err = asm.valueOf(args[0])
		if err != nil {
			return
		}
		if k > 0xFF {
			err = ErrOperandRange
			return
		}
		opcode.Code = MakeCodeLiteral(op, uint8(k))

	case OP_CALL, OP_GOTO:
		if len(args) != 1 {
			err = ErrOperandMissing
			return
		}
		target, _err := asm.valueOf(args[0])
		if _err != nil {
			// Not a number: link to a label after the parse.
			opcode.LinkLabel = args[0]
			target = 0
		}
		err = asm.encodeJump(&opcode, op, target)
		if err != nil {
			return
		}
	}

	asm.Opcode = append(asm.Opcode, opcode)

	return
}

// encodeJump encodes a CALL or GOTO to a target address.
func (asm *Assembler) encodeJump(opcode *Opcode, op Mnemonic, target uint16) (err error) {
	switch op {
	case OP_CALL:
		// CALL reaches only the first 256 words.
		if target > 0xFF {
			err = ErrOperandRange
			return
		}
		opcode.Code = MakeCodeLiteral(OP_CALL, uint8(target))
	default:
		if target > 0x1FF {
			err = ErrOperandRange
			return
		}
		opcode.Code = MakeCodeGoto(target)
	}

	return
}

// currentAddr gets the current assembly address.
func (asm *Assembler) currentAddr() int {
	return len(asm.Opcode)
}

// link resolves label references into jump targets.
func (asm *Assembler) link() (err error) {
	for n := range asm.Opcode {
		opcode := &asm.Opcode[n]
		if opcode.LinkLabel == "" {
			continue
		}

		target, ok := asm.Label[opcode.LinkLabel]
		if !ok {
			err = ErrSyntax{
				LineNo: opcode.LineNo,
				Line:   strings.Join(opcode.Words, " "),
				Err:    ErrLabelMissing(opcode.LinkLabel),
			}
			return
		}

		err = asm.encodeJump(opcode, opcode.Code.Mnemonic(), uint16(target))
		if err != nil {
			return
		}
	}

	return
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	locate := true
	defer func() {
		if err != nil && locate {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}
		if len(words) == 0 {
			continue
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	// link() locates its own errors.
	locate = false
	err = asm.link()
	if err != nil {
		return
	}

	prog = &Program{Opcodes: asm.Opcode}

	return
}
