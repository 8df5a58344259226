package main

import (
	"io"
	"reflect"
	"testing"
)

func TestNormalizeArgs(t *testing.T) {
	root := newRootCmd(nil, io.Discard, io.Discard)

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, []string{}},
		{"single dash", []string{"-action", "scan"}, []string{"--action", "scan"}},
		{"double dash unchanged", []string{"--action", "scan"}, []string{"--action", "scan"}},
		{"inline value", []string{"-format=json"}, []string{"--format=json"}},
		{"bool flag", []string{"-timestamp=false", "-interactive"}, []string{"--timestamp=false", "--interactive"}},
		{"bool flag takes no separate value", []string{"-timestamp", "false"}, []string{"--timestamp", "false"}},
		{"help", []string{"-help"}, []string{"--help"}},
		{"shorthand unchanged", []string{"-h"}, []string{"-h"}},
		{"persistent flag", []string{"-log-level", "debug"}, []string{"--log-level", "debug"}},
		{"subcommand flag", []string{"config", "init", "-force"}, []string{"config", "init", "--force"}},
		{"unknown flag unchanged", []string{"-nope"}, []string{"-nope"}},
		{"positional action", []string{"scan", "-ssid", "home"}, []string{"scan", "--ssid", "home"}},
		{"value that looks like a flag", []string{"-password", "-action"}, []string{"--password", "-action"}},
		{"after terminator", []string{"-bssid", "x", "--", "-action"}, []string{"--bssid", "x", "--", "-action"}},
		{"trailing flag without value", []string{"-bssid"}, []string{"--bssid"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeArgs(root, tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalizeArgs(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
