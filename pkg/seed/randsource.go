package seed

import (
	"fmt"
	"math/rand/v2"
)

// NewRandSource adapts src into a math/rand/v2 Source, so a hardware
// source can feed rand.New directly:
//
//	r := rand.New(seed.NewRandSource(src, 10))
//
// rand.Source has no failure channel, so each Uint64 draws through
// Retry with the given bound and panics if the source stays exhausted
// for all maxAttempts attempts. Pick a bound large enough that a panic
// signals a genuinely broken source rather than a busy one.
func NewRandSource(src Source, maxAttempts uint32) rand.Source {
	return &randSource{src: src, maxAttempts: maxAttempts}
}

type randSource struct {
	src         Source
	maxAttempts uint32
}

func (r *randSource) Uint64() uint64 {
	v, ok := Retry(r.src, r.maxAttempts)
	if !ok {
		panic(fmt.Sprintf("seed: %s source produced no value in %d attempts", r.src.Name(), r.maxAttempts))
	}
	return v
}
