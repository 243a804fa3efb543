package metrics

import "runtime"

// MemorySnapshot holds a point-in-time runtime reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
	Goroutines   int    // live goroutine count
}

// MemoryDelta is the difference between two snapshots, taken before and
// after a generation. AllocDelta can be negative when a GC cycle ran in
// between.
type MemoryDelta struct {
	AllocDelta   int64
	ObjectsDelta int64
	GCRuns       uint32
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
		Goroutines:   runtime.NumGoroutine(),
	}
}

// Delta reports how the runtime state moved from before to after.
func Delta(before, after MemorySnapshot) MemoryDelta {
	return MemoryDelta{
		AllocDelta:   int64(after.HeapAlloc) - int64(before.HeapAlloc),
		ObjectsDelta: int64(after.HeapObjects) - int64(before.HeapObjects),
		GCRuns:       after.NumGC - before.NumGC,
	}
}
