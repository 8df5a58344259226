package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/wlaninfo/internal/fields"
	"github.com/muurk/wlaninfo/internal/labels"
	"github.com/muurk/wlaninfo/internal/wlan"
)

func testNetworks() []wlan.Network {
	return []wlan.Network{
		{
			SSID:     fields.Present("home"),
			BSSID:    fields.Present("3c:37:86:aa:bb:01"),
			Channel:  wlan.Channel{Number: 36, Band: labels.Band5GHz, Width: labels.Width80MHz},
			RSSI:     -52,
			Security: labels.SecurityWPA2Personal,
		},
		{
			SSID:     fields.Present("cafe-guest"),
			BSSID:    fields.Present("3c:37:86:aa:bb:02"),
			Channel:  wlan.Channel{Number: 6, Band: labels.Band2GHz, Width: labels.Width20MHz},
			RSSI:     -71,
			Security: labels.SecurityNone,
		},
	}
}

func update(t *testing.T, m PickerModel, msg tea.Msg) PickerModel {
	t.Helper()
	next, _ := m.Update(msg)
	pm, ok := next.(PickerModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return pm
}

func TestPicker_ChooseSecuredNetworkAsksForPassword(t *testing.T) {
	m := NewPickerModel(testNetworks())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.PasswordMode {
		t.Fatal("choosing a secured network should ask for a password")
	}
	if m.Done {
		t.Fatal("picker finished before the password was entered")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hunter22")})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.Done {
		t.Fatal("picker should be done after confirming the password")
	}
	if m.Chosen == nil || m.Chosen.BSSID != fields.Present("3c:37:86:aa:bb:01") {
		t.Errorf("Chosen = %+v", m.Chosen)
	}
	if m.Password() != "hunter22" {
		t.Errorf("Password() = %q", m.Password())
	}
	if strings.Contains(m.View(), "hunter22") {
		t.Error("View() leaks the password")
	}
}

func TestPicker_ChooseOpenNetwork(t *testing.T) {
	m := NewPickerModel(testNetworks())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.List.Index() != 1 {
		t.Fatalf("Index() = %d after down, want 1", m.List.Index())
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.PasswordMode {
		t.Error("open network should not ask for a password")
	}
	if !m.Done || m.Chosen == nil || m.Chosen.SSID != fields.Present("cafe-guest") {
		t.Errorf("Done = %v, Chosen = %+v", m.Done, m.Chosen)
	}
	if m.Password() != "" {
		t.Errorf("Password() = %q, want empty", m.Password())
	}
}

func TestPicker_BackFromPassword(t *testing.T) {
	m := NewPickerModel(testNetworks())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.PasswordMode || m.Chosen != nil || m.Cancelled {
		t.Errorf("esc in password mode should return to the list: %+v", m)
	}
}

func TestPicker_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := update(t, NewPickerModel(testNetworks()), tt.msg)
			if !m.Cancelled {
				t.Error("picker should be cancelled")
			}
			if m.View() != "" {
				t.Errorf("View() after quit = %q, want empty", m.View())
			}
		})
	}
}

func TestNetworkItem(t *testing.T) {
	item := networkItem{network: testNetworks()[0]}
	if item.Title() != "home" {
		t.Errorf("Title() = %q", item.Title())
	}
	want := "3c:37:86:aa:bb:01 • ch 36 (5GHz) • -52 dBm • WPA2Personal"
	if item.Description() != want {
		t.Errorf("Description() = %q, want %q", item.Description(), want)
	}

	hidden := networkItem{network: wlan.Network{}}
	if hidden.Title() != "(hidden)" {
		t.Errorf("hidden Title() = %q", hidden.Title())
	}
}

func TestNetworkPicker_NoNetworks(t *testing.T) {
	p := NewNetworkPicker(strings.NewReader(""), &bytes.Buffer{})
	if _, _, err := p.Pick(context.Background(), nil); err == nil {
		t.Error("Pick() with no networks should fail")
	}
}
