package config

import (
	"fmt"
	"maps"
	"net"
	"slices"
	"strings"
	"time"

	"github.com/muurk/wlaninfo/internal/output"
)

// Backend names accepted by preferences.backend and the -backend flag.
const (
	BackendIW       = "iw"
	BackendSnapshot = "snapshot"
)

// Registry represents the entire user configuration file.
type Registry struct {
	Version     int               `yaml:"version"`
	Preferences *Preferences      `yaml:"preferences,omitempty"`
	IW          *IWSettings       `yaml:"iw,omitempty"`
	Snapshot    string            `yaml:"snapshot,omitempty"` // Snapshot file for the snapshot backend
	Aliases     map[string]string `yaml:"aliases,omitempty"`  // Friendly name -> BSSID

	path string
}

// Preferences holds defaults for command-line flags.
type Preferences struct {
	Format    string `yaml:"format,omitempty"`    // "tty" or "json"
	Interface string `yaml:"interface,omitempty"` // Default Wi-Fi interface
	Backend   string `yaml:"backend,omitempty"`   // "iw" or "snapshot"
	Timestamp *bool  `yaml:"timestamp,omitempty"` // Add Timestamp to current; nil means true
	// Password is NEVER stored in config file for security reasons
}

// IWSettings configures the iw backend.
type IWSettings struct {
	IWPath    string        `yaml:"iw_path,omitempty"`
	IPPath    string        `yaml:"ip_path,omitempty"`
	NmcliPath string        `yaml:"nmcli_path,omitempty"`
	Timeout   time.Duration `yaml:"timeout,omitempty"` // Per-command limit; zero means none
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	timestamp := true
	return &Registry{
		Version: 1,
		Preferences: &Preferences{
			Format:    string(output.FormatTTY),
			Backend:   BackendIW,
			Timestamp: &timestamp,
		},
		IW:      &IWSettings{},
		Aliases: make(map[string]string),
	}
}

// Path returns the file the registry was loaded from or will be saved to.
func (r *Registry) Path() string {
	return r.path
}

// fillDefaults initializes sections missing from a loaded file.
func (r *Registry) fillDefaults() {
	defaults := NewRegistry()
	if r.Preferences == nil {
		r.Preferences = defaults.Preferences
	}
	if r.Preferences.Format == "" {
		r.Preferences.Format = defaults.Preferences.Format
	}
	if r.Preferences.Backend == "" {
		r.Preferences.Backend = defaults.Preferences.Backend
	}
	if r.IW == nil {
		r.IW = defaults.IW
	}
	if r.Aliases == nil {
		r.Aliases = defaults.Aliases
	}
}

// TimestampEnabled reports whether current should carry a Timestamp field.
func (p *Preferences) TimestampEnabled() bool {
	return p == nil || p.Timestamp == nil || *p.Timestamp
}

// Validate checks the values a user may have edited by hand.
func (r *Registry) Validate() error {
	if r.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", r.Version)
	}
	if p := r.Preferences; p != nil {
		if p.Format != "" {
			if _, err := output.ParseFormat(p.Format); err != nil {
				return fmt.Errorf("preferences.format: %w", err)
			}
		}
		switch p.Backend {
		case "", BackendIW, BackendSnapshot:
		default:
			return fmt.Errorf("preferences.backend: unknown backend %q (expected %s or %s)", p.Backend, BackendIW, BackendSnapshot)
		}
	}
	if r.IW != nil && r.IW.Timeout < 0 {
		return fmt.Errorf("iw.timeout: must not be negative")
	}
	for _, name := range slices.Sorted(maps.Keys(r.Aliases)) {
		if _, err := net.ParseMAC(r.Aliases[name]); err != nil {
			return fmt.Errorf("aliases.%s: %q is not a BSSID", name, r.Aliases[name])
		}
	}
	return nil
}

// ResolveAlias returns the BSSID for a configured alias, or name unchanged
// when it is not an alias. Alias names match case-insensitively.
func (r *Registry) ResolveAlias(name string) string {
	if bssid, ok := r.Aliases[name]; ok {
		return bssid
	}
	for alias, bssid := range r.Aliases {
		if strings.EqualFold(alias, name) {
			return bssid
		}
	}
	return name
}

// SetAlias adds or replaces an alias. The BSSID is stored in lower case.
func (r *Registry) SetAlias(name, bssid string) error {
	if name == "" {
		return fmt.Errorf("alias name must not be empty")
	}
	if _, err := net.ParseMAC(bssid); err != nil {
		return fmt.Errorf("%q is not a BSSID: %w", bssid, err)
	}
	if r.Aliases == nil {
		r.Aliases = make(map[string]string)
	}
	r.Aliases[name] = strings.ToLower(bssid)
	return nil
}
