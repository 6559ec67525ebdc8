//go:build !amd64

package seed

import "fmt"

// The RDSEED/RDRAND instructions are x86-64 only. On other architectures
// the constructors fail and callers fall back to the system source.

// NewRDSeed returns a Source backed by the RDSEED instruction. This
// architecture has no RDSEED, so it always returns an error wrapping
// ErrUnsupported.
func NewRDSeed() (Source, error) {
	return nil, fmt.Errorf("%s: %w", NameRDSeed, ErrUnsupported)
}

// NewRDRand returns a Source backed by the RDRAND instruction. This
// architecture has no RDRAND, so it always returns an error wrapping
// ErrUnsupported.
func NewRDRand() (Source, error) {
	return nil, fmt.Errorf("%s: %w", NameRDRand, ErrUnsupported)
}
