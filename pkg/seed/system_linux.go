package seed

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

type systemSource struct{}

// NewSystem returns a Source backed by the kernel's getrandom(2). It is
// available on every machine, so unlike the instruction constructors it
// cannot fail.
func NewSystem() Source { return systemSource{} }

func (systemSource) Name() string { return NameSystem }

// TrySeed draws 8 bytes from the kernel. GRND_NONBLOCK keeps the attempt
// bounded: before the entropy pool is initialized the call reports EAGAIN
// instead of blocking, which surfaces here as an ordinary failed attempt.
func (systemSource) TrySeed() (uint64, bool) {
	var b [8]byte
	n, err := unix.Getrandom(b[:], unix.GRND_NONBLOCK)
	if err != nil || n != len(b) {
		return 0, false
	}
	return binary.LittleEndian.Uint64(b[:]), true
}
