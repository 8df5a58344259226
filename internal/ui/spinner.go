package ui

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// StartSpinner shows an activity spinner with msg on out and returns a
// function that removes it. Nothing is drawn unless out is a terminal.
func StartSpinner(out io.Writer, msg string) (stop func()) {
	if !IsTerminal(out) {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.Suffix = " " + msg
	s.Start()
	return s.Stop
}
