package mcu

import (
	"github.com/ezrec/pic10/periph"
)

// setFlag sets or clears a STATUS bit.
func (m *Mcu) setFlag(mask uint8, set bool) {
	status := m.data.Read(REG_STATUS)
	if set {
		status |= mask
	} else {
		status &^= mask
	}
	m.data.Write(REG_STATUS, status)
}

// flag reads a STATUS bit.
func (m *Mcu) flag(mask uint8) bool {
	return m.data.Read(REG_STATUS)&mask != 0
}

// setZ updates the zero flag from an 8-bit result.
func (m *Mcu) setZ(result uint8) {
	m.setFlag(STATUS_Z, result == 0)
}

// writeback stores an ALU result to W (d=0) or back to the file register
// (d=1). It reports a control transfer when the destination is PCL.
func (m *Mcu) writeback(code Code, result uint8) (transfer bool) {
	if code.DestFile() {
		transfer = m.storeFile(code.File(), result)
	} else {
		m.w = result
	}
	return
}

// execute performs one decoded operation against the register, stack and
// peripheral state. It returns the instruction cycle cost: 1 for
// straight-line instructions, 2 whenever the prefetched next instruction
// must be discarded (any control transfer, and any skip whose condition
// is true).
func (m *Mcu) execute(code Code) (cycles uint32, event Event) {
	cycles = 1
	next := m.pc + 1
	transfer := false

	skip := func() {
		next++
		cycles = 2
	}

	switch op := code.Mnemonic(); op {
	case OP_NOP:
		// pass

	case OP_OPTION:
		m.option = m.w
		m.configurePrescaler()

	case OP_SLEEP:
		// /TO set, /PD clear; the watchdog and its prescaler share
		// restart; input levels are latched for wake-on-change.
		m.setFlag(STATUS_TO, true)
		m.setFlag(STATUS_PD, false)
		m.watchdog.Clear()
		if m.prescaler.Target() == periph.PRESCALE_WATCHDOG {
			m.prescaler.Clear()
		}
		m.gpio.LatchInputs()
		m.clock = CLOCK_SLEEPING

	case OP_CLRWDT:
		m.setFlag(STATUS_TO, true)
		m.setFlag(STATUS_PD, true)
		m.watchdog.Clear()
		if m.prescaler.Target() == periph.PRESCALE_WATCHDOG {
			m.prescaler.Clear()
		}

	case OP_TRIS:
		m.gpio.SetTris(m.w)

	case OP_MOVWF:
		transfer = m.storeFile(code.File(), m.w)

	case OP_CLRW:
		m.w = 0
		m.setZ(0)

	case OP_CLRF:
		transfer = m.storeFile(code.File(), 0)
		m.setZ(0)

	case OP_SUBWF:
		file := m.readFile(code.File())
		result := file - m.w
		m.setFlag(STATUS_C, file >= m.w)
		m.setFlag(STATUS_DC, file&0xF >= m.w&0xF)
		m.setZ(result)
		transfer = m.writeback(code, result)

	case OP_ADDWF:
		file := m.readFile(code.File())
		sum := uint16(file) + uint16(m.w)
		result := uint8(sum)
		m.setFlag(STATUS_C, sum > 0xFF)
		m.setFlag(STATUS_DC, file&0xF+m.w&0xF > 0xF)
		m.setZ(result)
		transfer = m.writeback(code, result)

	case OP_IORWF:
		result := m.readFile(code.File()) | m.w
		m.setZ(result)
		transfer = m.writeback(code, result)

	case OP_ANDWF:
		result := m.readFile(code.File()) & m.w
		m.setZ(result)
		transfer = m.writeback(code, result)

	case OP_XORWF:
		result := m.readFile(code.File()) ^ m.w
		m.setZ(result)
		transfer = m.writeback(code, result)

	case OP_COMF:
		result := ^m.readFile(code.File())
		m.setZ(result)
		transfer = m.writeback(code, result)

	case OP_MOVF:
		result := m.readFile(code.File())
		m.setZ(result)
		transfer = m.writeback(code, result)

	case OP_DECF:
		result := m.readFile(code.File()) - 1
		m.setZ(result)
		transfer = m.writeback(code, result)

	case OP_INCF:
		result := m.readFile(code.File()) + 1
		m.setZ(result)
		transfer = m.writeback(code, result)

	case OP_DECFSZ:
		// The decremented value is written back whether or not the
		// skip is taken.
		result := m.readFile(code.File()) - 1
		transfer = m.writeback(code, result)
		if result == 0 {
			skip()
		}

	case OP_INCFSZ:
		result := m.readFile(code.File()) + 1
		transfer = m.writeback(code, result)
		if result == 0 {
			skip()
		}

	case OP_RRF:
		file := m.readFile(code.File())
		result := file >> 1
		if m.flag(STATUS_C) {
			result |= 0x80
		}
		m.setFlag(STATUS_C, file&0x01 != 0)
		transfer = m.writeback(code, result)

	case OP_RLF:
		file := m.readFile(code.File())
		result := file << 1
		if m.flag(STATUS_C) {
			result |= 0x01
		}
		m.setFlag(STATUS_C, file&0x80 != 0)
		transfer = m.writeback(code, result)

	case OP_SWAPF:
		file := m.readFile(code.File())
		result := file<<4 | file>>4
		transfer = m.writeback(code, result)

	case OP_BCF:
		file := m.readFile(code.File())
		transfer = m.storeFile(code.File(), file&^(1<<code.Bit()))

	case OP_BSF:
		file := m.readFile(code.File())
		transfer = m.storeFile(code.File(), file|1<<code.Bit())

	case OP_BTFSC:
		if m.readFile(code.File())&(1<<code.Bit()) == 0 {
			skip()
		}

	case OP_BTFSS:
		if m.readFile(code.File())&(1<<code.Bit()) != 0 {
			skip()
		}

	case OP_RETLW:
		m.w = code.Literal()
		m.pc = m.stack.Pop()
		transfer = true
		cycles = 2

	case OP_CALL:
		// The 8-bit target leaves PC bit 8 clear; subroutines land in
		// the first 256 words.
		m.stack.Push(next)
		m.pc = uint16(code.Literal())
		transfer = true
		cycles = 2

	case OP_GOTO:
		m.pc = code.Target()
		transfer = true
		cycles = 2

	case OP_MOVLW:
		m.w = code.Literal()

	case OP_IORLW:
		m.w |= code.Literal()
		m.setZ(m.w)

	case OP_ANDLW:
		m.w &= code.Literal()
		m.setZ(m.w)

	case OP_XORLW:
		m.w ^= code.Literal()
		m.setZ(m.w)

	default:
		// Reserved encoding: surface the fault, leave state untouched.
		// Halting or treating it as a NOP is the caller's policy.
		event = Event{Kind: EV_FAULT, Code: code}
	}

	if transfer {
		// PCL writes are control transfers: the prefetched word goes
		// stale just like a branch.
		cycles = 2
	} else {
		m.pc = next
	}

	return
}
