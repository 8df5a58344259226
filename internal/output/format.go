package output

import (
	"fmt"
	"slices"
	"strings"
)

// Format selects how documents are written.
type Format string

const (
	// FormatTTY is human-readable text.
	FormatTTY Format = "tty"
	// FormatJSON is newline-delimited JSON.
	FormatJSON Format = "json"
)

// Formats lists the accepted format names.
func Formats() []Format {
	return []Format{FormatTTY, FormatJSON}
}

// FormatNames returns the accepted names for help and error text,
// e.g. "tty or json".
func FormatNames() string {
	formats := Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	if len(names) < 2 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

// ParseFormat parses a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Formats(), f) {
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (expected %s)", s, FormatNames())
}

func (f Format) String() string {
	return string(f)
}
