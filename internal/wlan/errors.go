package wlan

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrorType represents the category of a backend failure
type ErrorType int

const (
	// ErrTypeCommand indicates an external tool failed to run or exited non-zero
	ErrTypeCommand ErrorType = iota
	// ErrTypeParse indicates tool output could not be understood
	ErrTypeParse
	// ErrTypeNotFound indicates the requested interface or network does not exist
	ErrTypeNotFound
	// ErrTypeUnsupported indicates the backend cannot perform the operation
	ErrTypeUnsupported
	// ErrTypeUnknown indicates an unexpected error
	ErrTypeUnknown
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeCommand:
		return "Command Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeNotFound:
		return "Not Found"
	case ErrTypeUnsupported:
		return "Unsupported"
	case ErrTypeUnknown:
		return "Unknown Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is returned by backends for every failed operation.
type Error struct {
	Op      string    // Operation that failed: "interfaces", "current", "scan", "associate"
	Type    ErrorType // Category of error
	Message string    // Human-readable message
	Tool    string    // External tool involved, if any
	Stderr  string    // Trimmed stderr of the tool, if any
	Err     error     // Underlying error, if any
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Stderr != "" {
		b.WriteString(": ")
		b.WriteString(e.Stderr)
	} else if e.Err != nil {
		fmt.Fprintf(&b, " (caused by: %v)", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewCommandError wraps the failure of an external tool.
func NewCommandError(op, tool, stderr string, err error) *Error {
	msg := fmt.Sprintf("%s failed", tool)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		msg = fmt.Sprintf("%s exited with status %d", tool, exitErr.ExitCode())
	} else if errors.Is(err, exec.ErrNotFound) {
		msg = fmt.Sprintf("%s not found in PATH", tool)
	}
	return &Error{
		Op:      op,
		Type:    ErrTypeCommand,
		Message: msg,
		Tool:    tool,
		Stderr:  strings.TrimSpace(stderr),
		Err:     err,
	}
}

// NewParseError reports output that could not be parsed.
func NewParseError(op, message string, err error) *Error {
	return &Error{Op: op, Type: ErrTypeParse, Message: message, Err: err}
}

// NewNotFoundError reports a missing interface or network.
func NewNotFoundError(op, message string) *Error {
	return &Error{Op: op, Type: ErrTypeNotFound, Message: message}
}

// NewUnsupportedError reports an operation the backend cannot perform.
func NewUnsupportedError(op, message string) *Error {
	return &Error{Op: op, Type: ErrTypeUnsupported, Message: message}
}

func errorType(err error) (ErrorType, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Type, true
	}
	return ErrTypeUnknown, false
}

// IsCommandError checks if err is an external tool failure
func IsCommandError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeCommand
}

// IsParseError checks if err is an output parsing failure
func IsParseError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeParse
}

// IsNotFoundError checks if err reports a missing interface or network
func IsNotFoundError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeNotFound
}

// IsUnsupportedError checks if err reports an unsupported operation
func IsUnsupportedError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeUnsupported
}

// TroubleshootingHint returns user-facing advice for a backend error, or ""
// when there is nothing useful to add.
func TroubleshootingHint(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}

	switch e.Type {
	case ErrTypeCommand:
		if errors.Is(e.Err, exec.ErrNotFound) {
			return strings.Join([]string{
				"Troubleshooting:",
				"  • Install " + e.Tool + " or set its path in the config file",
				"  • Run 'wlaninfo config path' to locate the config file",
			}, "\n")
		}
		hint := []string{"Troubleshooting:"}
		if e.Op == "scan" || e.Op == "associate" {
			hint = append(hint, "  • Scanning and associating usually require root or CAP_NET_ADMIN")
		}
		hint = append(hint,
			"  • Check that the interface exists: wlaninfo -action interfaces",
			"  • Check that the radio is not blocked: rfkill list",
		)
		return strings.Join(hint, "\n")

	case ErrTypeParse:
		return "The output of " + toolOrBackend(e) + " was not in a recognised format. Run with -log-level debug to see it."

	case ErrTypeNotFound:
		return "Run 'wlaninfo -action interfaces' to list the available interfaces."

	default:
		return ""
	}
}

func toolOrBackend(e *Error) string {
	if e.Tool != "" {
		return e.Tool
	}
	return "the backend"
}
