package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Reporter writes status and error lines for the user, normally to stderr.
type Reporter struct {
	out    io.Writer
	styled bool

	info    lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
}

// NewReporter creates a Reporter. Output is styled only when out is a
// terminal.
func NewReporter(out io.Writer) *Reporter {
	r := lipgloss.NewRenderer(out)
	return &Reporter{
		out:     out,
		styled:  IsTerminal(out),
		info:    r.NewStyle().Foreground(PrimaryColor),
		success: r.NewStyle().Foreground(SuccessColor),
		warn:    r.NewStyle().Foreground(WarningColor).Bold(true),
		err:     r.NewStyle().Foreground(ErrorColor).Bold(true),
		muted:   r.NewStyle().Foreground(MutedColor),
	}
}

// Styled reports whether the reporter adds terminal styling.
func (r *Reporter) Styled() bool {
	return r.styled
}

func (r *Reporter) render(style lipgloss.Style, s string) string {
	if !r.styled {
		return s
	}
	return style.Render(s)
}

// Status prints an informational line.
func (r *Reporter) Status(format string, args ...any) {
	_, _ = fmt.Fprintln(r.out, r.render(r.info, fmt.Sprintf(format, args...)))
}

// Success prints a completion line, marked with SuccessMarker on a terminal.
func (r *Reporter) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if r.styled {
		msg = SuccessMarker + " " + msg
	}
	_, _ = fmt.Fprintln(r.out, r.render(r.success, msg))
}

// Warn prints a warning line.
func (r *Reporter) Warn(format string, args ...any) {
	_, _ = fmt.Fprintln(r.out, r.render(r.warn, fmt.Sprintf(format, args...)))
}

// Error prints "Error: <err>" followed by an optional multi-line hint.
func (r *Reporter) Error(err error, hint string) {
	_, _ = fmt.Fprintln(r.out, r.render(r.err, "Error: "+err.Error()))
	if hint == "" {
		return
	}
	for _, line := range strings.Split(hint, "\n") {
		_, _ = fmt.Fprintln(r.out, r.render(r.muted, line))
	}
}
