package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"market-backdrop/src/utils"
)

func TestReadRuntimeStats(t *testing.T) {
	utils.ReleaseMemory()
	s := utils.ReadRuntimeStats()
	assert.Positive(t, s.HeapMB)
	assert.Positive(t, s.Goroutines)
	assert.Positive(t, s.NumGC)
}
