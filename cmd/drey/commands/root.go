package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dyluth/drey/internal/printer"
	"github.com/dyluth/drey/pkg/seed"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "drey",
	Short: "Drey - Hardware seed toolkit",
	Long: `Drey acquires hardware-quality 64-bit seed values from the CPU's
RDSEED and RDRAND instructions or from the operating system's entropy
interface.

Every source can decline an attempt, so drey retries within a finite,
explicit bound and reports sustained unavailability instead of spinning.`,
	Version: version,
	// Prevent silent success when unknown flags are passed to root command
	// e.g., "drey --source rdseed" instead of "drey get --source rdseed"
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is specified, show help
		return cmd.Help()
	},
	// Enable strict flag parsing - unknown flags will cause an error
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Silence Cobra's default error and usage printing
	// We print formatted colored errors directly in the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

// defaultAttempts is the retry bound the commands use unless overridden.
// Ten single attempts is the customary bound for DRNG retry loops.
const defaultAttempts = 10

// resolveSource opens the named seed source, or the preferred available
// one when name is empty. Failures are reported through the printer and
// returned as title-only errors.
func resolveSource(name string) (seed.Source, error) {
	if name == "" {
		return seed.Preferred(), nil
	}

	src, err := seed.Open(name)
	if err == nil {
		return src, nil
	}

	if errors.Is(err, seed.ErrUnsupported) {
		return nil, printer.ErrorWithContext(
			fmt.Sprintf("source '%s' is not supported on this machine", name),
			"The mechanism behind this source does not exist on this CPU or OS, so it can never produce a value here.",
			map[string]string{
				"Source":    name,
				"Preferred": seed.Preferred().Name(),
			},
			[]string{
				"See what this machine supports:\n     drey caps",
				"Let drey pick the best source by omitting --source",
			},
		)
	}

	return nil, printer.Error(
		fmt.Sprintf("unknown source '%s'", name),
		fmt.Sprintf("Known sources are: %s.", strings.Join(seed.Names(), ", ")),
		[]string{"See what this machine supports:\n  drey caps"},
	)
}
