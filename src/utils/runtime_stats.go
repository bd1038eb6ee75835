package utils

import (
	"runtime"
	"runtime/debug"
)

// -----------------------------------------------------------------------------
// Process memory reporting for the health endpoint.
// -----------------------------------------------------------------------------

// MRuntimeStats is a point-in-time view of the Go runtime.
type MRuntimeStats struct {
	HeapMB     float64 `json:"heap_mb"`
	Goroutines int     `json:"goroutines"`
	NumGC      uint32  `json:"num_gc"`
}

// -----------------------------------------------------------------------------

// ReadRuntimeStats samples heap usage. HeapAlloc is used as the process
// memory figure.
func ReadRuntimeStats() MRuntimeStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return MRuntimeStats{
		HeapMB:     float64(m.HeapAlloc) / 1024 / 1024,
		Goroutines: runtime.NumGoroutine(),
		NumGC:      m.NumGC,
	}
}

// -----------------------------------------------------------------------------

// ReleaseMemory forces a collection and returns freed pages to the OS.
// Called when the last browser session closes.
func ReleaseMemory() {
	runtime.GC()
	debug.FreeOSMemory()
}
