package io

import (
	"io"
)

// Tape provides sequential byte I/O for the IN and OUT units.
// Input bytes are read one per IN pulse; OUT writes the low byte of the
// latched value.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	sent     int
	received int
}

var _ Port = (*Tape)(nil)

// Rewind is not possible on a tape; it only clears the counters.
func (tc *Tape) Rewind() {
	tc.sent = 0
	tc.received = 0
}

// Receive reads the next byte from the input stream. The end of the
// stream is not an error; any other read failure is.
func (tc *Tape) Receive() (value uint16, ok bool, err error) {
	if tc.Input == nil {
		return
	}

	var one [1]byte
	n, err := tc.Input.Read(one[:])
	if n != 1 {
		if err == io.EOF {
			err = nil
		}
		return
	}

	// A failure alongside a byte is reported again by the next Read.
	err = nil
	tc.received++
	value, ok = uint16(one[0]), true
	return
}

// Send writes the low byte of value to the output stream.
func (tc *Tape) Send(value uint16) (err error) {
	if tc.Output == nil {
		err = ErrPortClosed
		return
	}

	_, err = tc.Output.Write([]byte{byte(value)})
	if err == nil {
		tc.sent++
	}
	return
}

// Sent returns the number of bytes written since the last rewind.
func (tc *Tape) Sent() int {
	return tc.sent
}

// Received returns the number of bytes read since the last rewind.
func (tc *Tape) Received() int {
	return tc.received
}
