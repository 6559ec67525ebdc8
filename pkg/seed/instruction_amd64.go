package seed

import (
	"fmt"

	"golang.org/x/sys/cpu"
)

// Implemented in instruction_amd64.s. Each call executes the instruction
// once; ok mirrors the carry flag and the value is zeroed on failure.
func rdseedStep() (v uint64, ok bool)
func rdrandStep() (v uint64, ok bool)

// instructionSource wraps one CPU instruction behind Source. The
// constructor has already verified the instruction exists, so step never
// faults.
type instructionSource struct {
	name string
	step func() (uint64, bool)
}

func (s *instructionSource) Name() string { return s.name }

func (s *instructionSource) TrySeed() (uint64, bool) { return s.step() }

// NewRDSeed returns a Source backed by the RDSEED instruction. On CPUs
// without RDSEED it returns an error wrapping ErrUnsupported. The CPUID
// feature flags consulted here are read once at process startup by
// package x/sys/cpu.
func NewRDSeed() (Source, error) {
	if !cpu.X86.HasRDSEED {
		return nil, fmt.Errorf("%s: %w", NameRDSeed, ErrUnsupported)
	}
	return &instructionSource{name: NameRDSeed, step: rdseedStep}, nil
}

// NewRDRand returns a Source backed by the RDRAND instruction. On CPUs
// without RDRAND it returns an error wrapping ErrUnsupported.
func NewRDRand() (Source, error) {
	if !cpu.X86.HasRDRAND {
		return nil, fmt.Errorf("%s: %w", NameRDRand, ErrUnsupported)
	}
	return &instructionSource{name: NameRDRand, step: rdrandStep}, nil
}
