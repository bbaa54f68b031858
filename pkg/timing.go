package pkg

import (
	"log"
	"sort"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
)

// AtomicDuration allows for atomic updates to a time.Duration value.
type AtomicDuration int64

func (a *AtomicDuration) Add(d time.Duration) {
	atomic.AddInt64((*int64)(a), int64(d))
}

func (a *AtomicDuration) Since(start time.Time) {
	stop := time.Now()
	a.Add(stop.Sub(start))
}

func (a *AtomicDuration) Duration() time.Duration {
	return time.Duration(atomic.LoadInt64((*int64)(a)))
}

type TEvent struct {
	Time   time.Time
	Worker int
	Text   string
}

// Timings collects phase durations of one run.
type Timings struct {
	Start time.Time
	Bytes int
	Lines int

	Since_Map       time.Duration
	Since_Plan      time.Duration
	Since_Aggregate time.Duration
	Since_Merge     time.Duration
	Since_Unmap     time.Duration
	Since_Format    time.Duration

	Busy AtomicDuration

	// one slot per worker, each written only by its worker
	workerEvents [][]TEvent
}

func NewTimings() *Timings {
	return &Timings{Start: time.Now()}
}

func (t *Timings) measure(d *time.Duration) func() {
	start := time.Now()
	return func() { *d += time.Since(start) }
}

func (t *Timings) startWorkers(n int) {
	t.workerEvents = make([][]TEvent, n)
}

func (t *Timings) event(worker int, text string) {
	t.workerEvents[worker] = append(t.workerEvents[worker], TEvent{time.Now(), worker, text})
}

// Events returns all worker events ordered by time.
func (t *Timings) Events() []TEvent {
	if t == nil {
		return nil
	}
	var events []TEvent
	for _, we := range t.workerEvents {
		events = append(events, we...)
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time.Before(events[j].Time)
	})
	return events
}

func (t *Timings) Report() {
	if t == nil {
		return
	}
	workers := len(t.workerEvents)
	var avgBusy time.Duration
	if workers > 0 {
		avgBusy = t.Busy.Duration() / time.Duration(workers)
	}

	log.Printf(`
? Input: %s in %s lines
[ Map: %v
[ Plan: %v
[ Aggregate: %v
  > Workers: %d
  > Avg Busy: %v
! Merge: %v
! Unmap: %v
! Format: %v
= Total: %v
	 `,
		humanize.Bytes(uint64(t.Bytes)),
		humanize.Comma(int64(t.Lines)),

		t.Since_Map,
		t.Since_Plan,
		t.Since_Aggregate,
		workers,
		avgBusy,

		t.Since_Merge,
		t.Since_Unmap,
		t.Since_Format,
		time.Since(t.Start),
	)
}
