package labels

import (
	"fmt"
	"math"
	"slices"
)

// ChannelBand is the frequency band a channel belongs to.
type ChannelBand int

const (
	BandUnknown ChannelBand = iota
	Band2GHz
	Band5GHz
	Band6GHz
)

// ChannelWidth is the bandwidth of a channel.
type ChannelWidth int

const (
	WidthUnknown ChannelWidth = iota
	Width20MHz
	Width40MHz
	Width80MHz
	Width160MHz
)

// PHYMode is the IEEE 802.11 physical layer mode in use.
type PHYMode int

const (
	PHYModeNone PHYMode = iota
	PHYMode11a
	PHYMode11b
	PHYMode11g
	PHYMode11n
	PHYMode11ac
	PHYMode11ax
)

// InterfaceMode is the operating mode of a Wi-Fi interface.
type InterfaceMode int

const (
	// InterfaceModeNone means the interface is not in any mode
	InterfaceModeNone InterfaceMode = iota
	// InterfaceModeStation means a non-AP station in an infrastructure network
	InterfaceModeStation
	// InterfaceModeIBSS means participating in an IBSS (ad-hoc) network
	InterfaceModeIBSS
	// InterfaceModeHostAP means acting as an access point
	InterfaceModeHostAP
)

// Security is the authentication scheme of a network or association.
type Security int

const (
	SecurityNone Security = iota
	SecurityWEP
	SecurityWPAPersonal
	SecurityWPAPersonalMixed
	SecurityWPA2Personal
	SecurityPersonal
	SecurityDynamicWEP
	SecurityWPAEnterprise
	SecurityWPAEnterpriseMixed
	SecurityWPA2Enterprise
	SecurityEnterprise
	SecurityWPA3Personal
	SecurityWPA3Enterprise
	SecurityWPA3Transition

	// SecurityUnknown is the out-of-range sentinel reported when the
	// scheme cannot be determined.
	SecurityUnknown Security = math.MaxInt
)

var channelBandLabels = map[ChannelBand]string{
	BandUnknown: "Unknown",
	Band2GHz:    "2GHz",
	Band5GHz:    "5GHz",
	Band6GHz:    "6GHz",
}

var channelWidthLabels = map[ChannelWidth]string{
	WidthUnknown: "Unknown",
	Width20MHz:   "20MHz",
	Width40MHz:   "40MHz",
	Width80MHz:   "80MHz",
	Width160MHz:  "160MHz",
}

// The "none" PHY mode is the only label that is deliberately empty.
var phyModeLabels = map[PHYMode]string{
	PHYModeNone: "",
	PHYMode11a:  "802.11a",
	PHYMode11b:  "802.11b",
	PHYMode11g:  "802.11g",
	PHYMode11n:  "802.11n",
	PHYMode11ac: "802.11ac",
	PHYMode11ax: "802.11ax",
}

var interfaceModeLabels = map[InterfaceMode]string{
	InterfaceModeNone:    "None",
	InterfaceModeStation: "Station",
	InterfaceModeIBSS:    "IBSS",
	InterfaceModeHostAP:  "HostAP",
}

var securityLabels = map[Security]string{
	SecurityNone:               "None",
	SecurityWEP:                "WEP",
	SecurityWPAPersonal:        "WPAPersonal",
	SecurityWPAPersonalMixed:   "WPAPersonalMixed",
	SecurityWPA2Personal:       "WPA2Personal",
	SecurityPersonal:           "Personal",
	SecurityDynamicWEP:         "DynamicWEP",
	SecurityWPAEnterprise:      "WPAEnterprise",
	SecurityWPAEnterpriseMixed: "WPAEnterpriseMixed",
	SecurityWPA2Enterprise:     "WPA2Enterprise",
	SecurityEnterprise:         "Enterprise",
	SecurityWPA3Personal:       "WPA3Personal",
	SecurityWPA3Enterprise:     "WPA3Enterprise",
	SecurityWPA3Transition:     "WPA3Transition",
	SecurityUnknown:            "Unknown",
}

// lookup returns the label for code and panics if the table has no entry.
func lookup[K ~int](table map[K]string, code K) string {
	label, ok := table[code]
	if !ok {
		panic(fmt.Sprintf("labels: no label for %T(%d)", code, int(code)))
	}
	return label
}

// String returns the display label, e.g. "5GHz".
func (b ChannelBand) String() string { return lookup(channelBandLabels, b) }

// String returns the display label, e.g. "80MHz".
func (w ChannelWidth) String() string { return lookup(channelWidthLabels, w) }

// String returns the display label, e.g. "802.11ac". PHYModeNone maps to "".
func (m PHYMode) String() string { return lookup(phyModeLabels, m) }

// String returns the display label, e.g. "Station".
func (m InterfaceMode) String() string { return lookup(interfaceModeLabels, m) }

// String returns the display label, e.g. "WPA2Personal".
func (s Security) String() string { return lookup(securityLabels, s) }

// ChannelBands returns every defined channel band.
func ChannelBands() []ChannelBand { return keys(channelBandLabels) }

// ChannelWidths returns every defined channel width.
func ChannelWidths() []ChannelWidth { return keys(channelWidthLabels) }

// PHYModes returns every defined PHY mode.
func PHYModes() []PHYMode { return keys(phyModeLabels) }

// InterfaceModes returns every defined interface mode.
func InterfaceModes() []InterfaceMode { return keys(interfaceModeLabels) }

// SecurityTypes returns every defined security type, including SecurityUnknown.
func SecurityTypes() []Security { return keys(securityLabels) }

func keys[K ~int](table map[K]string) []K {
	out := make([]K, 0, len(table))
	for k := range table {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
