package main

import "fmt"

// Exit codes for the gptresearch CLI.
const (
	ExitOK             = 0 // Success.
	ExitFailure        = 1 // A research call failed, or invalid arguments.
	ExitStartupFailure = 2 // Bad configuration or missing credentials.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitStartupFailure:
			msg = "gptresearch: startup failed"
		default:
			msg = "gptresearch: failed"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
