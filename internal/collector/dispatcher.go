package collector

import (
	"context"
	"fmt"
	"sync"
)

// batchSize bounds the intra-sweep parallelism: the dispatcher processes
// the registered collectors in batches of this size, awaiting every
// outcome in a batch before starting the next.
const batchSize = 4

// Dispatcher runs every registered collector and merges their output.
type Dispatcher struct {
	collectors []Collector
}

// NewDispatcher registers the given collectors in dispatch order; that
// order is preserved in the merged output. NewDefaultDispatcher supplies
// the full sixteen-collector roster.
func NewDispatcher(collectors ...Collector) *Dispatcher {
	return &Dispatcher{collectors: collectors}
}

// result pairs one collector's outcome with its dispatch index so the
// batch's goroutines can report out of order while the caller still
// assembles them back in dispatch order.
type result struct {
	index   int
	records []Record
	err     error
}

// Run executes every collector in batches of batchSize, concatenating
// completed batches in dispatch order. A single collector's failure
// never aborts the sweep: its error becomes a "<Service>: <message>"
// string in the returned error list.
func (d *Dispatcher) Run(ctx context.Context, clients *Clients) ([]Record, []string) {
	results := make([]result, len(d.collectors))

	for start := 0; start < len(d.collectors); start += batchSize {
		end := start + batchSize
		if end > len(d.collectors) {
			end = len(d.collectors)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				records, err := d.collectors[i].Collect(ctx, clients)
				results[i] = result{index: i, records: records, err: err}
			}(i)
		}
		wg.Wait()
	}

	var records []Record
	var errs []string
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, fmt.Sprintf("%s: %s", d.collectors[r.index].Name(), r.err.Error()))
			continue
		}
		records = append(records, r.records...)
	}
	return records, errs
}
