package spatialmine

import "runtime"

// memorySnapshot captures approximate process memory at mine() completion.
// No process-memory library appears anywhere in the retrieved corpus (the
// closest, gopsutil, is absent from every go.mod), so this seam is
// deliberately stdlib-only — see DESIGN.md.
type memorySnapshot struct {
	uss uint64
	rss uint64
}

// readMemorySnapshot approximates USS/RSS from runtime.MemStats: HeapAlloc
// (live heap, analogous to USS — memory uniquely owned by this process)
// and Sys (total memory obtained from the OS, analogous to RSS).
func readMemorySnapshot() memorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return memorySnapshot{uss: m.HeapAlloc, rss: m.Sys}
}
