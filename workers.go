package redtape

import "runtime"

// Worker sizing bounds for batch conversion.
const (
	MinWorkers = 1
	MaxWorkers = 16
)

// ResolveWorkers determines how many documents to convert in parallel.
// An explicit positive value wins; otherwise GOMAXPROCS (container-aware
// once automaxprocs has run) clamped to [MinWorkers, MaxWorkers].
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}
	return min(max(runtime.GOMAXPROCS(0), MinWorkers), MaxWorkers)
}
