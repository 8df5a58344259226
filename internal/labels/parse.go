package labels

import (
	"fmt"
	"strings"
)

// Short spellings accepted in addition to the display labels.
var (
	channelBandAliases = map[string]ChannelBand{
		"2.4ghz": Band2GHz,
		"2.4":    Band2GHz,
		"2":      Band2GHz,
		"5":      Band5GHz,
		"6":      Band6GHz,
	}
	channelWidthAliases = map[string]ChannelWidth{
		"20":  Width20MHz,
		"40":  Width40MHz,
		"80":  Width80MHz,
		"160": Width160MHz,
	}
	phyModeAliases = map[string]PHYMode{
		"none": PHYModeNone,
		"11a":  PHYMode11a,
		"11b":  PHYMode11b,
		"11g":  PHYMode11g,
		"11n":  PHYMode11n,
		"11ac": PHYMode11ac,
		"11ax": PHYMode11ax,
	}
	interfaceModeAliases = map[string]InterfaceMode{
		"managed": InterfaceModeStation,
		"adhoc":   InterfaceModeIBSS,
		"ap":      InterfaceModeHostAP,
	}
	securityAliases = map[string]Security{
		"open": SecurityNone,
		"wpa":  SecurityWPAPersonal,
		"wpa2": SecurityWPA2Personal,
		"wpa3": SecurityWPA3Personal,
	}
)

// parse matches s case-insensitively against the labels, then the aliases.
// Labels win over aliases; bare integers are not accepted so that "5" and
// "2" resolve through the alias tables rather than as raw codes.
func parse[K ~int](domain string, table map[K]string, aliases map[string]K, s string) (K, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for code, label := range table {
		if strings.ToLower(label) == want {
			return code, nil
		}
	}
	if code, ok := aliases[want]; ok {
		return code, nil
	}
	var zero K
	return zero, fmt.Errorf("unknown %s %q", domain, s)
}

// ParseChannelBand parses a band label such as "5GHz" or "2.4".
func ParseChannelBand(s string) (ChannelBand, error) {
	return parse("channel band", channelBandLabels, channelBandAliases, s)
}

// ParseChannelWidth parses a width label such as "80MHz" or "80".
func ParseChannelWidth(s string) (ChannelWidth, error) {
	return parse("channel width", channelWidthLabels, channelWidthAliases, s)
}

// ParsePHYMode parses a PHY mode label such as "802.11ac" or "11ac".
// The empty string parses as PHYModeNone.
func ParsePHYMode(s string) (PHYMode, error) {
	return parse("PHY mode", phyModeLabels, phyModeAliases, s)
}

// ParseInterfaceMode parses an interface mode such as "Station" or "managed".
func ParseInterfaceMode(s string) (InterfaceMode, error) {
	return parse("interface mode", interfaceModeLabels, interfaceModeAliases, s)
}

// ParseSecurity parses a security label such as "WPA2Personal" or "open".
func ParseSecurity(s string) (Security, error) {
	return parse("security type", securityLabels, securityAliases, s)
}

// Text marshalling lets the enums appear by label in YAML snapshot files.

func (b ChannelBand) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *ChannelBand) UnmarshalText(text []byte) error {
	v, err := ParseChannelBand(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (w ChannelWidth) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

func (w *ChannelWidth) UnmarshalText(text []byte) error {
	v, err := ParseChannelWidth(string(text))
	if err != nil {
		return err
	}
	*w = v
	return nil
}

func (m PHYMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *PHYMode) UnmarshalText(text []byte) error {
	v, err := ParsePHYMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m InterfaceMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *InterfaceMode) UnmarshalText(text []byte) error {
	v, err := ParseInterfaceMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (s Security) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Security) UnmarshalText(text []byte) error {
	v, err := ParseSecurity(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
