package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyluth/drey/pkg/seed"
)

func TestWriteCaps(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCaps(&buf))

	out := buf.String()

	// Every canonical source gets a row.
	for _, name := range seed.Names() {
		assert.Contains(t, out, name)
	}

	// The system source exists everywhere, so at least one row reads yes.
	assert.Contains(t, out, "yes")
	assert.Contains(t, out, "Preferred source:")
}

func TestDescribeSource(t *testing.T) {
	testCases := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "rdseed",
			source: seed.NameRDSeed,
			want:   "x86-64 RDSEED instruction (seed-grade)",
		},
		{
			name:   "rdrand",
			source: seed.NameRDRand,
			want:   "x86-64 RDRAND instruction (DRBG output)",
		},
		{
			name:   "system",
			source: seed.NameSystem,
			want:   "operating system entropy interface",
		},
		{
			name:   "unknown source has no description",
			source: "entropy9000",
			want:   "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, describeSource(tc.source))
		})
	}
}
