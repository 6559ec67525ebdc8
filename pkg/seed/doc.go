// Package seed acquires hardware-quality 64-bit seed values.
//
// # Overview
//
// A seed source is a mechanism that produces one 64-bit value per attempt.
// Three sources are provided: the x86-64 RDSEED and RDRAND instructions,
// and the operating system's entropy interface. Any mechanism can decline
// an attempt (hardware entropy conditioning may not keep up with demand),
// so the core operation reports availability alongside the value:
//
//	v, ok := src.TrySeed()
//
// A failed attempt carries no value and no error detail; it means only
// "nothing available right now" and leaves the source ready for the next
// attempt.
//
// # Capability Detection
//
// Whether the CPU implements RDSEED or RDRAND is a property of the
// machine, not of the moment, and is detected once at process startup via
// CPUID feature flags. NewRDSeed and NewRDRand report ErrUnsupported on
// machines without the instruction; the unsupported instruction is never
// executed. NewSystem always succeeds.
//
// # Retry
//
// Transient exhaustion is normal, so callers retry. Retry runs a bounded
// loop and never spins forever:
//
//	v, ok := seed.Retry(src, 10)
//
// The bound is always caller-supplied. A bound of 0 makes no attempts.
//
// # Usage Example
//
//	import "github.com/dyluth/drey/pkg/seed"
//
//	src, err := seed.NewRDSeed()
//	if err != nil {
//		// errors.Is(err, seed.ErrUnsupported) on CPUs without RDSEED
//		src = seed.NewSystem()
//	}
//
//	if v, ok := seed.Retry(src, 10); ok {
//		fmt.Printf("%016x\n", v)
//	}
//
// Preferred returns the best available source (rdseed, then rdrand, then
// system) without the explicit fallback dance above.
package seed
