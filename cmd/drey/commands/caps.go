package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dyluth/drey/pkg/seed"
)

var capsCmd = &cobra.Command{
	Use:   "caps",
	Short: "Show which seed sources this machine supports",
	Long: `Show each seed source with its availability on this machine.

Capability is a property of the CPU and operating system. It is detected
once at process startup from CPUID feature flags; unsupported instructions
are reported, never executed.

Sources:
  • rdseed - x86-64 RDSEED instruction (seed-grade, preferred)
  • rdrand - x86-64 RDRAND instruction (DRBG output)
  • system - operating system entropy interface (always present)`,
	RunE: runCaps,
}

func init() {
	rootCmd.AddCommand(capsCmd)
}

func runCaps(cmd *cobra.Command, args []string) error {
	return writeCaps(os.Stdout)
}

// writeCaps renders the capability table followed by the preferred source.
func writeCaps(w io.Writer) error {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Source", "Available", "Detail"})
	for _, name := range seed.Names() {
		if _, err := seed.Open(name); err != nil {
			tw.AppendRow(table.Row{name, "no", err.Error()})
			continue
		}
		tw.AppendRow(table.Row{name, "yes", describeSource(name)})
	}

	// Render returns the table without a trailing newline.
	if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nPreferred source: %s\n", seed.Preferred().Name())
	return err
}

// describeSource maps a source name to its one-line description.
func describeSource(name string) string {
	switch name {
	case seed.NameRDSeed:
		return "x86-64 RDSEED instruction (seed-grade)"
	case seed.NameRDRand:
		return "x86-64 RDRAND instruction (DRBG output)"
	case seed.NameSystem:
		return "operating system entropy interface"
	default:
		return ""
	}
}
