package seed

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupported reports that a source's underlying mechanism does not
// exist on this CPU or operating system. It is a permanent condition,
// distinct from the transient ok=false of a declined attempt.
var ErrUnsupported = errors.New("seed source not supported on this machine")

// Canonical source names, accepted by Open and returned by Names.
const (
	// NameRDSeed is the x86-64 RDSEED instruction, which draws
	// seed-grade values from the CPU's entropy conditioner.
	NameRDSeed = "rdseed"

	// NameRDRand is the x86-64 RDRAND instruction, which draws from the
	// CPU's DRBG.
	NameRDRand = "rdrand"

	// NameSystem is the operating system's entropy interface.
	NameSystem = "system"
)

// Source is a mechanism that produces 64-bit seed values on demand.
// Implementations are safe for concurrent use.
type Source interface {
	// Name returns the source's canonical name.
	Name() string

	// TrySeed makes exactly one attempt. On success it returns the value
	// and true. On failure it returns 0 and false; the failure is
	// transient and does not affect later attempts.
	TrySeed() (uint64, bool)
}

// Names returns the canonical source names in preference order.
func Names() []string {
	return []string{NameRDSeed, NameRDRand, NameSystem}
}

// Open constructs the source with the given canonical name. It returns an
// error wrapping ErrUnsupported when the machine lacks the mechanism, or a
// plain error for a name it does not know.
func Open(name string) (Source, error) {
	switch name {
	case NameRDSeed:
		return NewRDSeed()
	case NameRDRand:
		return NewRDRand()
	case NameSystem:
		return NewSystem(), nil
	default:
		return nil, fmt.Errorf("unknown seed source %q (known sources: %s)", name, strings.Join(Names(), ", "))
	}
}

// Preferred returns the best source this machine supports: rdseed, then
// rdrand, then system. RDSEED is preferred because it yields seed-grade
// output rather than DRBG output. The system source always exists, so
// Preferred never returns nil.
func Preferred() Source {
	if src, err := NewRDSeed(); err == nil {
		return src
	}
	if src, err := NewRDRand(); err == nil {
		return src
	}
	return NewSystem()
}

// Retry draws from src until one attempt succeeds, up to maxAttempts
// single attempts. It returns the first successful value, or 0 and false
// once the bound is exhausted. A bound of 0 makes no attempts and fails.
func Retry(src Source, maxAttempts uint32) (uint64, bool) {
	for i := uint32(0); i < maxAttempts; i++ {
		if v, ok := src.TrySeed(); ok {
			return v, true
		}
	}
	return 0, false
}
