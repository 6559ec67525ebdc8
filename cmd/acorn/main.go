// Command acorn makes one hardware seed attempt and reports the outcome.
//
// It takes no arguments and prints exactly one line: the value as 16
// zero-padded lowercase hex digits, or a failure notice when no value was
// available. A declined attempt is a normal outcome, so the exit code is
// 0 either way.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dyluth/drey/pkg/seed"
)

func main() {
	src, err := seed.NewRDSeed()
	os.Exit(run(os.Stdout, src, err))
}

// run contains the main logic and returns an exit code.
// This separation makes the logic testable and ensures deferred functions run.
func run(w io.Writer, src seed.Source, err error) int {
	if err != nil {
		// A machine without RDSEED reads the same as an attempt that
		// produced nothing.
		emit(w, 0, false)
		return 0
	}

	v, ok := src.TrySeed()
	emit(w, v, ok)
	return 0
}

// emit writes the single output line for one attempt outcome.
func emit(w io.Writer, v uint64, ok bool) {
	if ok {
		fmt.Fprintf(w, "Random 64-bit number: %016x\n", v)
		return
	}
	fmt.Fprintln(w, "Failed to generate random number")
}
