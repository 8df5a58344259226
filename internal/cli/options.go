package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/muurk/wlaninfo/internal/output"
)

// Action names a dispatcher operation.
type Action string

const (
	ActionInterfaces Action = "interfaces"
	ActionCurrent    Action = "current"
	ActionScan       Action = "scan"
	ActionAssociate  Action = "associate"
)

// DefaultAction is used when no action is given.
const DefaultAction = ActionCurrent

// Actions lists every action in usage order.
func Actions() []Action {
	return []Action{ActionInterfaces, ActionCurrent, ActionScan, ActionAssociate}
}

// ParseAction validates an action name. The empty string selects
// DefaultAction.
func ParseAction(s string) (Action, error) {
	if s == "" {
		return DefaultAction, nil
	}
	for _, a := range Actions() {
		if string(a) == s {
			return a, nil
		}
	}
	return "", &UsageError{Message: "Unrecognized action: " + s}
}

// Options selects what Run does.
type Options struct {
	Action    Action
	Format    output.Format
	Interface string // Empty selects the backend's default interface
	SSID      string // Scan filter
	BSSID     string // Target for associate; may be an alias
	Password  string

	// Timestamp adds a Timestamp field to current.
	Timestamp bool

	// Interactive lets associate pick the network when no BSSID is given.
	Interactive bool
}

// Validate checks the options without touching the backend.
func (o Options) Validate() error {
	if _, err := ParseAction(string(o.Action)); err != nil {
		return err
	}
	if o.Format != "" {
		if _, err := output.ParseFormat(string(o.Format)); err != nil {
			return &UsageError{Message: err.Error()}
		}
	}
	if o.Action == ActionAssociate && o.BSSID == "" && !o.Interactive {
		return &UsageError{Message: "The 'associate' action requires supplying a -bssid value"}
	}
	return nil
}

// UsageError reports invalid command-line options.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// IsUsageError checks if err is a usage error
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// Usage returns the usage synopsis for the program name.
func Usage(program string) string {
	actions := make([]string, 0, len(Actions()))
	for _, a := range Actions() {
		if a != ActionAssociate {
			actions = append(actions, string(a))
		}
	}
	return strings.Join([]string{
		fmt.Sprintf("Usage: %s -h|-help|--help", program),
		fmt.Sprintf("       %s -action %s [-format tty|json] [-interface name]", program, strings.Join(actions, "|")),
		fmt.Sprintf("       %s # same as: -action current", program),
		fmt.Sprintf("       %s -action scan [-ssid name]", program),
		fmt.Sprintf("       %s -action associate -bssid bssid|alias [-password password]", program),
		fmt.Sprintf("       %s -action associate -interactive", program),
	}, "\n")
}
