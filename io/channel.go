// Package io provides the I/O ports attached to the SIS16 IN and OUT units.
package io

// Port defines the interface for a word-wide I/O port.
type Port interface {
	// Rewind resets the port to its initial state.
	Rewind()
	// Receive returns the next input value, if any is available.
	// An exhausted port is not an error.
	Receive() (value uint16, ok bool, err error)
	// Send writes a value latched by the OUT register.
	Send(value uint16) error
}
