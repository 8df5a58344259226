package records

import (
	"reflect"
	"testing"

	"github.com/muurk/wlaninfo/internal/fields"
	"github.com/muurk/wlaninfo/internal/labels"
	"github.com/muurk/wlaninfo/internal/wlan"
)

func TestChannel(t *testing.T) {
	got := Channel(wlan.Channel{Number: 36, Band: labels.Band5GHz, Width: labels.Width80MHz})
	want := fields.Mapping{
		"ChannelNumber": fields.Present("36"),
		"ChannelBand":   fields.Present("5GHz"),
		"ChannelWidth":  fields.Present("80MHz"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Channel() = %v, want %v", got, want)
	}
}

func TestNetwork(t *testing.T) {
	n := wlan.Network{
		SSID:               fields.Present("home"),
		SSIDData:           []byte("home"),
		BSSID:              fields.Present("3c:37:86:aa:bb:01"),
		Channel:            wlan.Channel{Number: 6, Band: labels.Band2GHz, Width: labels.Width20MHz},
		RSSI:               -63,
		Noise:              -91,
		InformationElement: []byte{0xdd, 0x05},
		BeaconInterval:     100,
		Security:           labels.SecurityWPA3Transition,
	}

	got := Network(n)
	want := fields.Mapping{
		"SSID":           fields.Present("home"),
		"BSSID":          fields.Present("3c:37:86:aa:bb:01"),
		"RSSI":           fields.Present("-63"),
		"Noise":          fields.Present("-91"),
		"Country":        fields.Absent,
		"BeaconInterval": fields.Present("100"),
		"IBSS":           fields.Present("false"),
		"Security":       fields.Present("WPA3Transition"),
		"ChannelNumber":  fields.Present("6"),
		"ChannelBand":    fields.Present("2GHz"),
		"ChannelWidth":   fields.Present("20MHz"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Network() =\n%v\nwant\n%v", got, want)
	}
}

func TestNetwork_ExcludesBinaryPayloads(t *testing.T) {
	got := Network(wlan.Network{SSIDData: []byte("x"), InformationElement: []byte{1}})
	for _, key := range []string{"SSIDData", "InformationElement"} {
		if _, ok := got[key]; ok {
			t.Errorf("Network() includes %s", key)
		}
	}
}

func TestInterface(t *testing.T) {
	iface := wlan.Interface{
		Name:            "wlan0",
		PowerOn:         true,
		Channel:         &wlan.Channel{Number: 149, Band: labels.Band5GHz, Width: labels.Width40MHz},
		PHYMode:         labels.PHYMode11ax,
		SSID:            fields.Present("office"),
		BSSID:           fields.Present("3c:37:86:aa:bb:04"),
		RSSI:            -48,
		Noise:           -96,
		Security:        labels.SecurityWPA2Enterprise,
		TransmitRate:    573.5,
		CountryCode:     fields.Present("DE"),
		Mode:            labels.InterfaceModeStation,
		TransmitPower:   100,
		HardwareAddress: fields.Present("3c:06:30:12:34:56"),
		ServiceActive:   true,
	}

	got := Interface(iface)
	want := fields.Mapping{
		"Name":            fields.Present("wlan0"),
		"PowerOn":         fields.Present("true"),
		"ActivePHYMode":   fields.Present("802.11ax"),
		"SSID":            fields.Present("office"),
		"BSSID":           fields.Present("3c:37:86:aa:bb:04"),
		"RSSI":            fields.Present("-48"),
		"Noise":           fields.Present("-96"),
		"Security":        fields.Present("WPA2Enterprise"),
		"TransmitRate":    fields.Present("573.5"),
		"Country":         fields.Present("DE"),
		"InterfaceMode":   fields.Present("Station"),
		"TransmitPower":   fields.Present("100"),
		"HardwareAddress": fields.Present("3c:06:30:12:34:56"),
		"ServiceActive":   fields.Present("true"),
		"ChannelNumber":   fields.Present("149"),
		"ChannelBand":     fields.Present("5GHz"),
		"ChannelWidth":    fields.Present("40MHz"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Interface() =\n%v\nwant\n%v", got, want)
	}
}

func TestInterface_NoChannel(t *testing.T) {
	got := Interface(wlan.Interface{Name: "wlan1", Security: labels.SecurityUnknown})

	for _, key := range []string{"ChannelNumber", "ChannelBand", "ChannelWidth"} {
		if _, ok := got[key]; ok {
			t.Errorf("Interface() without channel has %s", key)
		}
	}
	if len(got) != 14 {
		t.Errorf("Interface() has %d keys, want 14", len(got))
	}

	tests := []struct {
		key  string
		want fields.Value
	}{
		{"ActivePHYMode", fields.Present("")},
		{"SSID", fields.Absent},
		{"BSSID", fields.Absent},
		{"Country", fields.Absent},
		{"HardwareAddress", fields.Absent},
		{"Security", fields.Present("Unknown")},
		{"InterfaceMode", fields.Present("None")},
		{"TransmitRate", fields.Present("0")},
		{"PowerOn", fields.Present("false")},
	}
	for _, tt := range tests {
		if got[tt.key] != tt.want {
			t.Errorf("%s = %#v, want %#v", tt.key, got[tt.key], tt.want)
		}
	}
}

func TestNetworks(t *testing.T) {
	networks := []wlan.Network{
		{SSID: fields.Present("b")},
		{SSID: fields.Present("a")},
	}
	got := Networks(networks)
	if len(got) != 2 {
		t.Fatalf("Networks() returned %d mappings", len(got))
	}
	if got[0]["SSID"] != fields.Present("b") || got[1]["SSID"] != fields.Present("a") {
		t.Error("Networks() did not preserve scan order")
	}
	if got := Networks(nil); len(got) != 0 {
		t.Errorf("Networks(nil) = %v", got)
	}
}
