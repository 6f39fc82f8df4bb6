// Package periph provides the on-chip peripheral models for the PIC10F20x
// emulator: the shared 8-bit prescaler, the TMR0 free-running timer, the
// watchdog timer, and the GPIO port.
//
// The peripherals hold only their own counters and latches; the special
// function registers they are configured from (OPTION, TMR0) live in the
// core's file register space. The core advances the peripherals in lockstep
// with the instruction clock, one call per elapsed instruction cycle.
package periph
