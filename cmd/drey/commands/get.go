package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dyluth/drey/internal/printer"
	"github.com/dyluth/drey/pkg/seed"
)

var (
	getSource   string
	getAttempts uint32
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Acquire one 64-bit seed value",
	Long: `Acquire one 64-bit seed value and print it as 16 zero-padded
lowercase hex digits.

A source may decline individual attempts during transient entropy
exhaustion, so get retries up to --attempts times and then reports
failure rather than waiting indefinitely. The bound is always finite.`,
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringVarP(&getSource, "source", "s", "", "Seed source to use: rdseed, rdrand, or system (default: preferred available source)")
	getCmd.Flags().Uint32VarP(&getAttempts, "attempts", "a", defaultAttempts, "Maximum single attempts before giving up")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	src, err := resolveSource(getSource)
	if err != nil {
		return err
	}

	v, ok := seed.Retry(src, getAttempts)
	if !ok {
		return printer.Error(
			fmt.Sprintf("no seed from '%s' after %d attempts", src.Name(), getAttempts),
			"The source declined every attempt. Transient exhaustion under sustained load is normal for hardware sources.",
			[]string{
				fmt.Sprintf("Raise the bound:\n     drey get --source %s --attempts %d", src.Name(), suggestedAttempts(getAttempts)),
				"Fall back to the system source:\n     drey get --source system",
			},
		)
	}

	fmt.Println(formatSeed(v))
	return nil
}

// formatSeed renders a seed value as 16 zero-padded lowercase hex digits.
func formatSeed(v uint64) string {
	return fmt.Sprintf("%016x", v)
}

// suggestedAttempts proposes a ten times higher retry bound for the
// failure hint. Widened to uint64 so the largest flag value cannot wrap.
func suggestedAttempts(bound uint32) uint64 {
	return uint64(bound) * 10
}
