// Package sampler measures seed source availability over many attempts.
package sampler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dyluth/drey/pkg/seed"
)

// Options configures a sampling run.
type Options struct {
	// Attempts is the total number of single attempts to make.
	Attempts int

	// Workers is the number of goroutines drawing concurrently.
	Workers int
}

// Summary is the outcome of a sampling run. Attempt values are observed
// only for their success flag and are never retained or judged.
type Summary struct {
	Source    string
	Attempts  int // attempts actually completed
	Successes int
	Failures  int
	Elapsed   time.Duration
	Latencies []time.Duration // one per completed attempt, unordered
}

// Run makes opts.Attempts single attempts against src spread across
// opts.Workers goroutines and tallies the outcomes. Attempt slots are
// claimed from an atomic counter, so the total is exact for any worker
// count.
//
// Cancelling ctx stops the run early: Run returns the summary of the
// attempts completed so far together with ctx's error.
func Run(ctx context.Context, src seed.Source, opts Options) (*Summary, error) {
	if opts.Attempts < 0 {
		return nil, fmt.Errorf("attempts must be >= 0, got %d", opts.Attempts)
	}
	if opts.Workers < 1 {
		return nil, fmt.Errorf("workers must be >= 1, got %d", opts.Workers)
	}

	tallies := make([]tally, opts.Workers)
	var next atomic.Int64
	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func(t *tally) {
			defer wg.Done()
			for ctx.Err() == nil {
				n := next.Add(1)
				if n > int64(opts.Attempts) {
					return
				}
				t.observe(src)
			}
		}(&tallies[w])
	}
	wg.Wait()

	sum := &Summary{Source: src.Name(), Elapsed: time.Since(start)}
	for i := range tallies {
		sum.Successes += tallies[i].successes
		sum.Failures += tallies[i].failures
		sum.Latencies = append(sum.Latencies, tallies[i].latencies...)
	}
	sum.Attempts = sum.Successes + sum.Failures
	return sum, ctx.Err()
}

// tally holds one worker's private counters, merged after the pool drains.
type tally struct {
	successes int
	failures  int
	latencies []time.Duration
}

func (t *tally) observe(src seed.Source) {
	begin := time.Now()
	_, ok := src.TrySeed()
	t.latencies = append(t.latencies, time.Since(begin))
	if ok {
		t.successes++
	} else {
		t.failures++
	}
}
