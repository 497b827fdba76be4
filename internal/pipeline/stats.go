package pipeline

import "time"

// RunStats tracks the outcome of one composite build.
type RunStats struct {
	Frames      int
	OutputBytes int64
	Elapsed     time.Duration
}

// BatchStats tracks aggregate counters across a multi-directory batch.
type BatchStats struct {
	Total  int
	Done   int
	Failed int
}
