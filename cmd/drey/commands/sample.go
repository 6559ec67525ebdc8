package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dyluth/drey/internal/printer"
	"github.com/dyluth/drey/internal/report"
	"github.com/dyluth/drey/internal/sampler"
)

var (
	sampleSource   string
	sampleAttempts int
	sampleWorkers  int
	sampleFormat   string
	sampleOut      string
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Measure a seed source's availability over many attempts",
	Long: `Measure how reliably a seed source produces values by making many
single attempts and tallying the outcomes.

The report includes:
  • success/failure counts and the success rate
  • per-attempt latency (mean, stddev, p50/p90/p99)
  • a unique run ID and timestamp

Attempt values are only checked for availability, never retained.
Interrupting a run (Ctrl-C) reports the attempts completed so far.`,
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().StringVarP(&sampleSource, "source", "s", "", "Seed source to sample (default: preferred available source)")
	sampleCmd.Flags().IntVarP(&sampleAttempts, "attempts", "a", 10000, "Total single attempts to make")
	sampleCmd.Flags().IntVarP(&sampleWorkers, "workers", "w", 1, "Concurrent drawing goroutines")
	sampleCmd.Flags().StringVarP(&sampleFormat, "format", "f", string(report.FormatTable), "Report format: table, json, or yaml")
	sampleCmd.Flags().StringVarP(&sampleOut, "out", "o", "", "Write the report to a file instead of stdout")
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	format := report.Format(sampleFormat)
	if err := format.Validate(); err != nil {
		return printer.Error(
			fmt.Sprintf("invalid report format '%s'", sampleFormat),
			err.Error(),
			[]string{"Pick one of: table, json, yaml"},
		)
	}

	src, err := resolveSource(sampleSource)
	if err != nil {
		return err
	}

	// Ctrl-C stops the run but still reports what completed.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printer.Step("sampling '%s': %d attempts across %d worker(s)\n", src.Name(), sampleAttempts, sampleWorkers)

	sum, err := sampler.Run(ctx, src, sampler.Options{Attempts: sampleAttempts, Workers: sampleWorkers})
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		printer.Warning("interrupted: reporting the %d attempts completed so far\n", sum.Attempts)
	default:
		return printer.Error(
			"sampling failed",
			err.Error(),
			[]string{"Check the flag values: attempts must be >= 0 and workers >= 1"},
		)
	}

	rep := report.New(sum)

	out := io.Writer(os.Stdout)
	if sampleOut != "" {
		f, err := os.Create(sampleOut)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := report.Write(out, format, rep); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if sampleOut != "" {
		printer.Success("report written to %s\n", sampleOut)
	}
	return nil
}
