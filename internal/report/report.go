// Package report turns sampling summaries into rendered reports.
package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/dyluth/drey/internal/sampler"
)

// Format selects a report rendering.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Validate returns an error when f is not a known format.
func (f Format) Validate() error {
	switch f {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unknown report format %q (known formats: %s, %s, %s)", f, FormatTable, FormatJSON, FormatYAML)
	}
}

// Latency summarizes per-attempt latency. All values are nanoseconds.
type Latency struct {
	MeanNs   float64 `json:"mean_ns" yaml:"mean_ns"`
	StdDevNs float64 `json:"stddev_ns" yaml:"stddev_ns"`
	P50Ns    float64 `json:"p50_ns" yaml:"p50_ns"`
	P90Ns    float64 `json:"p90_ns" yaml:"p90_ns"`
	P99Ns    float64 `json:"p99_ns" yaml:"p99_ns"`
}

// Report is a rendered-ready view of one sampling run.
type Report struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	Source      string    `json:"source" yaml:"source"`
	Attempts    int       `json:"attempts" yaml:"attempts"`
	Successes   int       `json:"successes" yaml:"successes"`
	Failures    int       `json:"failures" yaml:"failures"`
	SuccessRate float64   `json:"success_rate" yaml:"success_rate"`
	ElapsedMs   int64     `json:"elapsed_ms" yaml:"elapsed_ms"`
	Latency     Latency   `json:"latency" yaml:"latency"`
}

// New builds a Report from a sampling summary, tagging it with a fresh run
// ID and a UTC timestamp.
func New(sum *sampler.Summary) *Report {
	r := &Report{
		RunID:     uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Source:    sum.Source,
		Attempts:  sum.Attempts,
		Successes: sum.Successes,
		Failures:  sum.Failures,
		ElapsedMs: sum.Elapsed.Milliseconds(),
		Latency:   summarizeLatency(sum.Latencies),
	}
	if sum.Attempts > 0 {
		r.SuccessRate = float64(sum.Successes) / float64(sum.Attempts)
	}
	return r
}

// summarizeLatency computes the latency stats over the observed attempt
// durations. Every field stays 0 for an empty run, and the spread stays 0
// for a single sample; gonum would report NaN there, which JSON encoders
// refuse to serialize.
func summarizeLatency(durations []time.Duration) Latency {
	if len(durations) == 0 {
		return Latency{}
	}

	ns := make([]float64, len(durations))
	for i, d := range durations {
		ns[i] = float64(d.Nanoseconds())
	}
	sort.Float64s(ns)

	l := Latency{
		MeanNs: stat.Mean(ns, nil),
		P50Ns:  stat.Quantile(0.50, stat.Empirical, ns, nil),
		P90Ns:  stat.Quantile(0.90, stat.Empirical, ns, nil),
		P99Ns:  stat.Quantile(0.99, stat.Empirical, ns, nil),
	}
	if len(ns) > 1 {
		l.StdDevNs = stat.StdDev(ns, nil)
	}
	return l
}

// Write renders r to w in the given format.
func Write(w io.Writer, f Format, r *Report) error {
	if err := f.Validate(); err != nil {
		return err
	}

	switch f {
	case FormatJSON:
		return writeJSON(w, r)
	case FormatYAML:
		return writeYAML(w, r)
	default:
		return writeTable(w, r)
	}
}

func writeJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report as JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report as YAML: %w", err)
	}
	return enc.Close()
}

func writeTable(w io.Writer, r *Report) error {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Field", "Value"})
	tw.AppendRows([]table.Row{
		{"run id", r.RunID},
		{"created at", r.CreatedAt.Format(time.RFC3339)},
		{"source", r.Source},
		{"attempts", r.Attempts},
		{"successes", r.Successes},
		{"failures", r.Failures},
		{"success rate", fmt.Sprintf("%.2f%%", r.SuccessRate*100)},
		{"elapsed", fmt.Sprintf("%dms", r.ElapsedMs)},
		{"latency mean", formatNs(r.Latency.MeanNs)},
		{"latency stddev", formatNs(r.Latency.StdDevNs)},
		{"latency p50", formatNs(r.Latency.P50Ns)},
		{"latency p90", formatNs(r.Latency.P90Ns)},
		{"latency p99", formatNs(r.Latency.P99Ns)},
	})

	// Render returns the table without a trailing newline.
	if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
		return fmt.Errorf("failed to write report table: %w", err)
	}
	return nil
}

// formatNs renders a nanosecond quantity as a human-readable duration.
func formatNs(ns float64) string {
	return time.Duration(int64(ns)).String()
}
