// Package seedtest provides scripted seed sources for tests.
package seedtest

import (
	"sync"

	"github.com/dyluth/drey/pkg/seed"
)

// Outcome is one scripted TrySeed result.
type Outcome struct {
	V  uint64
	OK bool
}

// Script is a seed.Source that replays a fixed sequence of outcomes and
// counts its calls. Once the sequence runs out it keeps returning the
// final outcome. Safe for concurrent use.
type Script struct {
	name string

	mu       sync.Mutex
	outcomes []Outcome
	calls    int
}

var _ seed.Source = (*Script)(nil)

// New returns a Script named name that replays outcomes in order. It
// panics when outcomes is empty.
func New(name string, outcomes ...Outcome) *Script {
	if len(outcomes) == 0 {
		panic("seedtest: a script needs at least one outcome")
	}
	return &Script{name: name, outcomes: outcomes}
}

// Always returns a source whose attempts all succeed with value v.
func Always(v uint64) *Script {
	return New("always", Outcome{V: v, OK: true})
}

// Never returns a source whose attempts all fail.
func Never() *Script {
	return New("never", Outcome{})
}

func (s *Script) Name() string { return s.name }

func (s *Script) TrySeed() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	s.calls++
	if i >= len(s.outcomes) {
		i = len(s.outcomes) - 1
	}
	return s.outcomes[i].V, s.outcomes[i].OK
}

// Calls reports how many attempts the script has served.
func (s *Script) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
