package utils

import (
	"market-backdrop/src/models"
)

// -----------------------------------------------------------------------------
// RingBuffer is a fixed-size circular buffer of bars.
// Eviction from the front and appends at the back are O(1).
// -----------------------------------------------------------------------------

type RingBuffer struct {
	data     []models.MBar
	capacity int
	head     int // Oldest element
	size     int // Current number of elements
}

// -----------------------------------------------------------------------------

// NewRingBuffer creates a new buffer with fixed capacity
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = 1
	}

	return &RingBuffer{
		data:     make([]models.MBar, capacity),
		capacity: capacity,
	}
}

// -----------------------------------------------------------------------------

// Append adds a bar at the back. When full, the oldest bar is overwritten
// and returned with ok=true.
func (rb *RingBuffer) Append(bar models.MBar) (evicted models.MBar, ok bool) {
	if rb.size == rb.capacity {
		evicted = rb.data[rb.head]
		rb.data[rb.head] = bar
		rb.head = (rb.head + 1) % rb.capacity
		return evicted, true
	}

	rb.data[(rb.head+rb.size)%rb.capacity] = bar
	rb.size++
	return models.MBar{}, false
}

// -----------------------------------------------------------------------------

// At returns the i-th bar counted from the oldest.
func (rb *RingBuffer) At(i int) models.MBar {
	if i < 0 || i >= rb.size {
		panic("utils: ring buffer index out of range")
	}
	return rb.data[(rb.head+i)%rb.capacity]
}

// -----------------------------------------------------------------------------

// GetAll returns all data in insertion order (oldest to newest)
func (rb *RingBuffer) GetAll() []models.MBar {
	result := make([]models.MBar, rb.size)
	for i := 0; i < rb.size; i++ {
		result[i] = rb.data[(rb.head+i)%rb.capacity]
	}
	return result
}

// -----------------------------------------------------------------------------

// Size returns current number of elements
func (rb *RingBuffer) Size() int {
	return rb.size
}

// -----------------------------------------------------------------------------

// Capacity returns buffer capacity (fixed)
func (rb *RingBuffer) Capacity() int {
	return rb.capacity
}

// -----------------------------------------------------------------------------

// Resize changes the capacity of the buffer.
// If newCapacity < size, oldest data is dropped.
func (rb *RingBuffer) Resize(newCapacity int) {
	if newCapacity <= 0 || newCapacity == rb.capacity {
		return
	}

	count := rb.size
	if count > newCapacity {
		count = newCapacity
	}

	// Keep the newest 'count' bars
	newData := make([]models.MBar, newCapacity)
	skip := rb.size - count
	for i := 0; i < count; i++ {
		newData[i] = rb.data[(rb.head+skip+i)%rb.capacity]
	}

	rb.data = newData
	rb.capacity = newCapacity
	rb.head = 0
	rb.size = count
}

// -----------------------------------------------------------------------------

// Clear resets the buffer
func (rb *RingBuffer) Clear() {
	rb.head = 0
	rb.size = 0
}
