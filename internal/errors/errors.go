// Package errors formats fatal CLI failures so every command exits the
// same way: one "Error: ..." line on stderr, a structured log entry, and
// exit code 1.
package errors

import (
	"fmt"
	"os"

	"github.com/driplog/drip/internal/logger"
)

// Format renders an error with the standard "Error: " prefix.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs the error, prints it to stderr, and exits with code 1.
// A nil error is a no-op so callers can pass command results through directly.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command failed", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(1)
}

// FatalWithHint is Fatal plus indented follow-up lines telling the user
// what to do instead.
func FatalWithHint(err error, hints ...string) {
	if err == nil {
		return
	}
	logger.Error("Command failed", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	for _, h := range hints {
		fmt.Fprintf(os.Stderr, "       %s\n", h)
	}
	os.Exit(1)
}
