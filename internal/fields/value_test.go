package fields

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestValue(t *testing.T) {
	if s, ok := Present("home").Get(); !ok || s != "home" {
		t.Errorf("Present(home).Get() = %q, %v", s, ok)
	}
	if Absent.IsPresent() {
		t.Error("Absent.IsPresent() = true")
	}
	if got := Absent.String(); got != "N/A" {
		t.Errorf("Absent.String() = %q, want N/A", got)
	}
	if got := Present("").String(); got != "" {
		t.Errorf("Present(\"\").String() = %q, want empty", got)
	}
	if Optional("").IsPresent() {
		t.Error("Optional(\"\") should be absent")
	}
	if got := Optional("US").Or("??"); got != "US" {
		t.Errorf("Optional(US).Or() = %q", got)
	}
	var zero Value
	if zero != Absent {
		t.Error("zero Value should equal Absent")
	}
}

func TestMerge(t *testing.T) {
	base := Mapping{"SSID": Present("home"), "ChannelNumber": Present("1")}
	channel := Mapping{"ChannelNumber": Present("36"), "ChannelBand": Present("5GHz")}

	got := Merge(base, channel)
	want := Mapping{
		"SSID":          Present("home"),
		"ChannelNumber": Present("36"),
		"ChannelBand":   Present("5GHz"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}

	// inputs are untouched
	if base["ChannelNumber"] != Present("1") {
		t.Error("Merge() modified its first argument")
	}

	if got := Merge(base, nil); !reflect.DeepEqual(got, base) {
		t.Errorf("Merge(base, nil) = %v, want %v", got, base)
	}
}

func TestMappingKeys(t *testing.T) {
	m := Mapping{"SSID": Absent, "BSSID": Absent, "RSSI": Absent}
	want := []string{"BSSID", "RSSI", "SSID"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestMappingJSONRoundTrip(t *testing.T) {
	in := Mapping{
		"SSID":    Present("home"),
		"RSSI":    Present("-50"),
		"Country": Absent,
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"Country":null,"RSSI":"-50","SSID":"home"}`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var out Mapping
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

func TestValueUnmarshalNonString(t *testing.T) {
	var m Mapping
	if err := json.Unmarshal([]byte(`{"RSSI":-50,"IBSS":false}`), &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got := m["RSSI"]; got != Present("-50") {
		t.Errorf("RSSI = %v, want -50", got)
	}
	if got := m["IBSS"]; got != Present("false") {
		t.Errorf("IBSS = %v, want false", got)
	}
}
