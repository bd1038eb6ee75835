package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-backdrop/src/models"
	"market-backdrop/src/utils"
)

func bar(c float64) models.MBar {
	return models.MBar{Open: c, High: c, Low: c, Close: c}
}

func closes(bars []models.MBar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}

func TestRingBuffer_AppendEvictsOldest(t *testing.T) {
	rb := utils.NewRingBuffer(3)
	for i := 1; i <= 3; i++ {
		_, ok := rb.Append(bar(float64(i)))
		require.False(t, ok)
	}
	require.Equal(t, rb.Capacity(), rb.Size())

	evicted, ok := rb.Append(bar(4))
	require.True(t, ok)
	assert.Equal(t, 1.0, evicted.Close)
	assert.Equal(t, []float64{2, 3, 4}, closes(rb.GetAll()))
	assert.Equal(t, 2.0, rb.At(0).Close)
	assert.Equal(t, 4.0, rb.At(2).Close)
}

func TestRingBuffer_AtOutOfRangePanics(t *testing.T) {
	rb := utils.NewRingBuffer(2)
	rb.Append(bar(1))
	assert.Panics(t, func() { rb.At(1) })
	assert.Panics(t, func() { rb.At(-1) })
}

func TestRingBuffer_ResizeKeepsNewest(t *testing.T) {
	rb := utils.NewRingBuffer(4)
	for i := 1; i <= 6; i++ {
		rb.Append(bar(float64(i)))
	}

	rb.Resize(2)
	assert.Equal(t, 2, rb.Capacity())
	assert.Equal(t, []float64{5, 6}, closes(rb.GetAll()))

	rb.Resize(5)
	assert.Equal(t, []float64{5, 6}, closes(rb.GetAll()))
	assert.Equal(t, 2, rb.Size())

	rb.Resize(0)
	assert.Equal(t, 5, rb.Capacity(), "non-positive sizes are ignored")
}

func TestRingBuffer_Clear(t *testing.T) {
	rb := utils.NewRingBuffer(0)
	assert.Equal(t, 1, rb.Capacity())
	rb.Append(bar(1))
	rb.Clear()
	assert.Zero(t, rb.Size())
	assert.Empty(t, rb.GetAll())
}
