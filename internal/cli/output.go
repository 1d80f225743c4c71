// Package cli provides output helpers shared by commands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// WriteOutput writes value as indented JSON.
func WriteOutput(out io.Writer, value any) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

// PreflightError describes a usage problem with a suggested fix.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	return e.Message
}

// ExitError carries a specific exit code without extra output.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func exitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var preflight *PreflightError
	if errors.As(err, &preflight) {
		return 2
	}
	return 1
}

func printError(err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	if IsJSONOutput() {
		payload := map[string]string{"error": err.Error()}
		var preflight *PreflightError
		if errors.As(err, &preflight) {
			payload["hint"] = preflight.Hint
			payload["next_step"] = preflight.NextStep
		}
		_ = WriteOutput(os.Stderr, payload)
		return
	}

	fmt.Fprintf(os.Stderr, "%s %v\n", colorize("Error:", colorRed), err)
	var preflight *PreflightError
	if errors.As(err, &preflight) {
		if preflight.Hint != "" {
			fmt.Fprintf(os.Stderr, "  Hint: %s\n", preflight.Hint)
		}
		if preflight.NextStep != "" {
			fmt.Fprintf(os.Stderr, "  Next: %s\n", preflight.NextStep)
		}
	}
}
