package pkg

// SetAggregate swaps the per-chunk aggregator used by Summarize.
func SetAggregate(f func([]byte, Chunk) (*StationTable, error)) (restore func()) {
	old := aggregate
	aggregate = f
	return func() { aggregate = old }
}
