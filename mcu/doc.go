// Package mcu implements the core and assembler for the PIC10F20x emulator.
//
// The core consists of a 12-bit instruction decoder, the fetch/execute
// pipeline with its one-word prefetch, the 8-bit W register and ALU, the
// file register space with its read/write side effects, a two-level
// hardware return stack, and the scheduler that advances the peripherals
// in lockstep with the instruction clock. Four variants are modeled:
// PIC10F200, 10F202, 10F204 and 10F206.
//
// The assembler provides the baseline PIC 12-bit instruction set with
// labels, equates, and compile-time expression evaluation.
package mcu
