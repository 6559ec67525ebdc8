//go:build !linux

package seed

import (
	crand "crypto/rand"
	"encoding/binary"
)

type systemSource struct{}

// NewSystem returns a Source backed by the platform's crypto/rand reader
// (BCryptGenRandom, SecRandomCopyBytes, or equivalent). It is available on
// every machine, so unlike the instruction constructors it cannot fail.
func NewSystem() Source { return systemSource{} }

func (systemSource) Name() string { return NameSystem }

func (systemSource) TrySeed() (uint64, bool) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, false
	}
	return binary.LittleEndian.Uint64(b[:]), true
}
