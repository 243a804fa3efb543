package metrics

import "testing"

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	snap := mc.Snapshot()

	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
	if snap.Goroutines == 0 {
		t.Error("Goroutines should be > 0")
	}
}

func TestMemoryCollector_Delta(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	before := mc.Snapshot()

	// Allocate some memory
	buf := make([]byte, 1024*1024) // 1 MB
	_ = buf

	after := mc.Snapshot()

	// Sys should not decrease between snapshots
	if after.Sys < before.Sys {
		t.Error("Sys should not decrease between snapshots")
	}

	delta := Delta(before, after)
	if delta.GCRuns != after.NumGC-before.NumGC {
		t.Errorf("GCRuns = %d, want %d", delta.GCRuns, after.NumGC-before.NumGC)
	}
}

func TestDelta_SignedArithmetic(t *testing.T) {
	t.Parallel()

	before := MemorySnapshot{HeapAlloc: 2000, HeapObjects: 100, NumGC: 3}
	after := MemorySnapshot{HeapAlloc: 1500, HeapObjects: 80, NumGC: 5}

	delta := Delta(before, after)
	if delta.AllocDelta != -500 {
		t.Errorf("AllocDelta = %d, want -500", delta.AllocDelta)
	}
	if delta.ObjectsDelta != -20 {
		t.Errorf("ObjectsDelta = %d, want -20", delta.ObjectsDelta)
	}
	if delta.GCRuns != 2 {
		t.Errorf("GCRuns = %d, want 2", delta.GCRuns)
	}
}
