package io

const (
	// RING_DEFAULT_CAPACITY is the default capacity in words for a new ring.
	RING_DEFAULT_CAPACITY = 4096
)

// Ring is a word-wide loopback port: values sent by the OUT unit are
// received, in order, by the IN unit.
type Ring struct {
	Capacity int

	WriteIndex int
	ReadIndex  int
	Data       []uint16
}

var _ Port = (*Ring)(nil)

// Rewind resets the ring's read position to the start, keeping its data.
func (ring *Ring) Rewind() {
	if ring.Capacity == 0 {
		ring.Capacity = RING_DEFAULT_CAPACITY
	}

	ring.ReadIndex = 0
	ring.WriteIndex = len(ring.Data)
}

// Receive returns the word at the read position.
func (ring *Ring) Receive() (value uint16, ok bool, err error) {
	if ring == nil || ring.ReadIndex >= ring.WriteIndex {
		return
	}

	value, ok = ring.Data[ring.ReadIndex], true
	ring.ReadIndex++
	return
}

// Send writes a word at the write position.
// Returns ErrPortFull if the ring has reached capacity.
func (ring *Ring) Send(value uint16) (err error) {
	if ring == nil {
		err = ErrPortClosed
		return
	}

	if ring.Capacity == 0 {
		ring.Capacity = RING_DEFAULT_CAPACITY
	}
	if ring.WriteIndex >= ring.Capacity {
		err = ErrPortFull
		return
	}

	ring.Data = append(ring.Data[:ring.WriteIndex], value)
	ring.WriteIndex++

	return
}
