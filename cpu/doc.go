// Package cpu implements the clock-pulse model of the SIS16 microprocessor.
//
// The processor is a breadboard-style design: registers (PC, MAR, IR, A, B,
// T and OUT) share one 16-bit bus, each pulse a set of units drives the bus
// and another set latches it, and an 8-bit stack pointer addresses a 256-byte
// window of RAM. Which units drive and latch on each pulse is decided by a
// control table (see Table), so the sequencer in this package runs any
// instruction set that can be written as a table of micro-steps.
//
// Every call to Cpu.Step runs exactly one pulse in five phases: resolve the
// control word, settle the bus, latch, update flags, advance the sequencer.
package cpu
