package wlan

import (
	"context"

	"github.com/muurk/wlaninfo/internal/fields"
	"github.com/muurk/wlaninfo/internal/labels"
)

// Channel describes a radio channel.
type Channel struct {
	Number int                 `yaml:"number"`
	Band   labels.ChannelBand  `yaml:"band"`
	Width  labels.ChannelWidth `yaml:"width"`
}

// Network is a single BSS seen during a scan.
type Network struct {
	SSID               fields.Value
	SSIDData           []byte
	BSSID              fields.Value
	Channel            Channel
	RSSI               int
	Noise              int
	InformationElement []byte
	CountryCode        fields.Value
	BeaconInterval     int
	IBSS               bool
	Security           labels.Security
}

// Interface is the state of a Wi-Fi interface at the time it was queried.
// Channel is nil when the interface is not on a channel.
type Interface struct {
	Name            string
	PowerOn         bool
	Channel         *Channel
	PHYMode         labels.PHYMode
	SSID            fields.Value
	SSIDData        []byte
	BSSID           fields.Value
	RSSI            int
	Noise           int
	Security        labels.Security
	TransmitRate    float64
	CountryCode     fields.Value
	Mode            labels.InterfaceMode
	TransmitPower   int
	HardwareAddress fields.Value
	ServiceActive   bool
}

// Client is the set of Wi-Fi operations the dispatcher needs.
//
// An empty interface name selects the backend's default interface.
type Client interface {
	// InterfaceNames lists the Wi-Fi interfaces on the host.
	InterfaceNames(ctx context.Context) ([]string, error)

	// Interface returns the current state of the named interface.
	Interface(ctx context.Context, name string) (*Interface, error)

	// Scan runs an active scan. A non-empty ssid restricts the scan to
	// that network name.
	Scan(ctx context.Context, iface, ssid string) ([]Network, error)

	// Associate joins network. An empty password joins without credentials.
	Associate(ctx context.Context, iface string, network Network, password string) error
}

// FindByBSSID returns the first network whose BSSID equals bssid exactly.
func FindByBSSID(networks []Network, bssid string) (Network, bool) {
	for _, n := range networks {
		if id, ok := n.BSSID.Get(); ok && id == bssid {
			return n, true
		}
	}
	return Network{}, false
}
