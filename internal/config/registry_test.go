package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "wlaninfo") {
		t.Errorf("GetConfigDir() = %v, should contain 'wlaninfo'", configDir)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigDir_XDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if want := filepath.Join(dir, "wlaninfo"); got != want {
		t.Errorf("GetConfigDir() = %v, want %v", got, want)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}
	if reg.Preferences == nil {
		t.Fatal("NewRegistry().Preferences should not be nil")
	}
	if reg.Preferences.Format != "tty" {
		t.Errorf("Format = %q, want tty", reg.Preferences.Format)
	}
	if reg.Preferences.Backend != BackendIW {
		t.Errorf("Backend = %q, want iw", reg.Preferences.Backend)
	}
	if !reg.Preferences.TimestampEnabled() {
		t.Error("timestamps should be enabled by default")
	}
	if reg.Aliases == nil {
		t.Error("NewRegistry().Aliases should not be nil")
	}
	if err := reg.Validate(); err != nil {
		t.Errorf("default registry fails validation: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reg.Path() != path {
		t.Errorf("Path() = %v, want %v", reg.Path(), path)
	}
	if reg.Preferences.Format != "tty" {
		t.Errorf("Format = %q, want default", reg.Preferences.Format)
	}
}

func TestRegistrySaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	reg.Preferences.Format = "json"
	reg.Preferences.Interface = "wlan1"
	off := false
	reg.Preferences.Timestamp = &off
	reg.IW.IWPath = "/usr/sbin/iw"
	reg.IW.Timeout = 30 * time.Second
	reg.Snapshot = "/tmp/snap.yaml"
	if err := reg.SetAlias("home", "3C:37:86:AA:BB:01"); err != nil {
		t.Fatalf("SetAlias() error = %v", err)
	}

	if err := reg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0600 {
		t.Errorf("file mode = %v, want 0600", info.Mode().Perm())
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file was left behind")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Preferences.Format != "json" || loaded.Preferences.Interface != "wlan1" {
		t.Errorf("Preferences = %+v", loaded.Preferences)
	}
	if loaded.Preferences.TimestampEnabled() {
		t.Error("timestamp preference was not persisted")
	}
	if loaded.IW.IWPath != "/usr/sbin/iw" || loaded.IW.Timeout != 30*time.Second {
		t.Errorf("IW = %+v", loaded.IW)
	}
	if loaded.Snapshot != "/tmp/snap.yaml" {
		t.Errorf("Snapshot = %q", loaded.Snapshot)
	}
	if got := loaded.ResolveAlias("home"); got != "3c:37:86:aa:bb:01" {
		t.Errorf("ResolveAlias(home) = %q", got)
	}
}

func TestSave_NeverWritesPasswords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if _, err := CreateDefaultConfig(path, false); err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		if strings.Contains(strings.ToLower(line), "password") {
			t.Errorf("config contains a password field: %q", line)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"minimal", "version: 1\n", ""},
		{"full", "version: 1\npreferences:\n  format: json\n  backend: snapshot\niw:\n  timeout: 5s\naliases:\n  office: \"3c:37:86:aa:bb:04\"\n", ""},
		{"bad version", "version: 2\n", "unsupported config version"},
		{"missing version", "preferences:\n  format: json\n", "unsupported config version"},
		{"bad format", "version: 1\npreferences:\n  format: xml\n", "preferences.format"},
		{"bad backend", "version: 1\npreferences:\n  backend: corewlan\n", "preferences.backend"},
		{"bad alias", "version: 1\naliases:\n  home: nope\n", "aliases.home"},
		{"negative timeout", "version: 1\niw:\n  timeout: -1s\n", "iw.timeout"},
		{"bad yaml", "version: [1\n", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := Parse([]byte(tt.data))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Parse() error = %v", err)
				}
				if reg.Preferences == nil || reg.IW == nil || reg.Aliases == nil {
					t.Error("Parse() left sections nil")
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestResolveAlias(t *testing.T) {
	reg := NewRegistry()
	if err := reg.SetAlias("Home", "3c:37:86:aa:bb:01"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"Home", "3c:37:86:aa:bb:01"},
		{"home", "3c:37:86:aa:bb:01"},
		{"3c:37:86:aa:bb:02", "3c:37:86:aa:bb:02"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := reg.ResolveAlias(tt.in); got != tt.want {
			t.Errorf("ResolveAlias(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSetAlias_Invalid(t *testing.T) {
	reg := NewRegistry()
	if err := reg.SetAlias("", "3c:37:86:aa:bb:01"); err == nil {
		t.Error("SetAlias with empty name should fail")
	}
	if err := reg.SetAlias("home", "not-a-mac"); err == nil {
		t.Error("SetAlias with bad BSSID should fail")
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	got, err := CreateDefaultConfig(path, false)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if got != path {
		t.Errorf("CreateDefaultConfig() = %v, want %v", got, path)
	}

	if _, err := CreateDefaultConfig(path, false); !errors.Is(err, ErrConfigExists) {
		t.Errorf("second CreateDefaultConfig() error = %v, want ErrConfigExists", err)
	}
	if _, err := CreateDefaultConfig(path, true); err != nil {
		t.Errorf("CreateDefaultConfig(force) error = %v", err)
	}

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reg.ResolveAlias("example") != "00:11:22:33:44:55" {
		t.Errorf("example alias missing: %v", reg.Aliases)
	}
}

func TestTimestampEnabled(t *testing.T) {
	var nilPrefs *Preferences
	if !nilPrefs.TimestampEnabled() {
		t.Error("nil preferences should enable timestamps")
	}
	off := false
	if (&Preferences{Timestamp: &off}).TimestampEnabled() {
		t.Error("explicit false should disable timestamps")
	}
}

func BenchmarkGetConfigDir(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GetConfigDir()
	}
}
