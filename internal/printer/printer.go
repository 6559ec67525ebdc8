// Package printer renders user-facing CLI output with consistent colors.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

func init() {
	// Keep color on even without a TTY; NO_COLOR opts out.
	if os.Getenv("NO_COLOR") == "" {
		color.NoColor = false
	}
}

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// Success prints a green message with a checkmark prefix.
func Success(format string, a ...any) {
	green.Printf("✓ %s", fmt.Sprintf(format, a...))
}

// Warning prints a yellow message with a warning prefix to stderr.
func Warning(format string, a ...any) {
	yellow.Fprintf(os.Stderr, "⚠️  %s", fmt.Sprintf(format, a...))
}

// Step prints a cyan progress line to stderr. Progress never shares a
// stream with machine-readable output on stdout.
func Step(format string, a ...any) {
	cyan.Fprintf(os.Stderr, "→ %s", fmt.Sprintf(format, a...))
}

// Error prints a rich error to stderr (red title, explanation, numbered
// suggestions) and returns a title-only error for cobra. SilenceErrors on
// the root command keeps cobra from printing the title a second time.
func Error(title string, explanation string, suggestions []string) error {
	red.Fprintf(os.Stderr, "%s\n\n", title)
	fmt.Fprintf(os.Stderr, "%s\n", explanation)
	printSuggestions(os.Stderr, suggestions)
	return fmt.Errorf("%s", title)
}

// ErrorWithContext is Error with a block of key/value details between the
// explanation and the suggestions.
func ErrorWithContext(title string, explanation string, context map[string]string, suggestions []string) error {
	red.Fprintf(os.Stderr, "%s\n\n", title)
	if explanation != "" {
		fmt.Fprintf(os.Stderr, "%s\n", explanation)
	}
	if len(context) > 0 {
		fmt.Fprintf(os.Stderr, "\n")
		for key, value := range context {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", key, value)
		}
	}
	printSuggestions(os.Stderr, suggestions)
	return fmt.Errorf("%s", title)
}

func printSuggestions(w io.Writer, suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintf(w, "\n")
	if len(suggestions) == 1 {
		fmt.Fprintf(w, "%s\n", suggestions[0])
		return
	}
	fmt.Fprintf(w, "Either:\n")
	for i, suggestion := range suggestions {
		fmt.Fprintf(w, "  %d. %s\n", i+1, suggestion)
	}
}
