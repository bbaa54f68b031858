package pkg

import (
	"errors"
	"io"
	"runtime"
	"sync"
	"time"
)

type Options struct {
	// Workers is the number of parallel aggregators; <= 0 means NumCPU.
	Workers int
	Format  FormatOptions
	// Timings, when set, records phase durations and worker events.
	Timings *Timings
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

var aggregate = Aggregate

// Summarize aggregates data with one goroutine per chunk and merges the
// results once every worker has returned. It fails if any worker fails; there
// is no partial result. The returned Totals does not reference data.
func Summarize(data []byte, opts Options) (*Totals, error) {
	t := opts.Timings
	if t == nil {
		t = &Timings{}
	}
	n := opts.workers()

	done := t.measure(&t.Since_Plan)
	chunks := PlanChunks(data, n)
	done()

	done = t.measure(&t.Since_Aggregate)
	t.startWorkers(n)
	var (
		wg     sync.WaitGroup
		tables = make([]*StationTable, n)
		errs   = make([]error, n)
	)
	wg.Add(n)
	for i, c := range chunks {
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					tables[i] = nil
					errs[i] = &WorkerError{Worker: i, Value: r}
				}
			}()

			start := time.Now()
			t.event(i, "start")
			tables[i], errs[i] = aggregate(data, c)
			t.event(i, "done")
			t.Busy.Since(start)
		}()
	}
	wg.Wait()
	done()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	done = t.measure(&t.Since_Merge)
	totals := Merge(tables...)
	done()

	t.Bytes = len(data)
	totals.Ascend(func(_ []byte, v *StationStat) { t.Lines += int(v.Count) })
	return totals, nil
}

// Run maps the file at path, summarizes it and writes the summary to w. The
// mapping is released before formatting; a zero-length file yields an empty
// summary.
func Run(path string, w io.Writer, opts Options) error {
	if opts.Timings == nil {
		opts.Timings = &Timings{}
	}
	t := opts.Timings

	done := t.measure(&t.Since_Map)
	mf, err := MMapFile(path)
	done()

	var totals *Totals
	switch {
	case errors.Is(err, ErrEmptyFile):
		totals = NewTotals()
	case err != nil:
		return err
	default:
		totals, err = Summarize(mf.Bytes(), opts)

		done = t.measure(&t.Since_Unmap)
		cerr := mf.Close()
		done()

		if err != nil {
			return err
		}
		if cerr != nil {
			return cerr
		}
	}

	done = t.measure(&t.Since_Format)
	defer done()
	return WriteSummary(w, totals, opts.Format)
}
