package wlan

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/wlaninfo/internal/fields"
	"github.com/muurk/wlaninfo/internal/labels"
)

// Snapshot is the on-disk form of a SnapshotClient: a recorded view of the
// host's interfaces and the networks around them.
type Snapshot struct {
	DefaultInterface string              `yaml:"default_interface,omitempty"`
	Interfaces       []SnapshotInterface `yaml:"interfaces"`
	Networks         []SnapshotNetwork   `yaml:"networks,omitempty"`
}

// SnapshotInterface is an Interface as written in a snapshot file. Empty
// strings stand for absent values.
type SnapshotInterface struct {
	Name            string               `yaml:"name"`
	PowerOn         bool                 `yaml:"power_on"`
	Channel         *Channel             `yaml:"channel,omitempty"`
	PHYMode         labels.PHYMode       `yaml:"phy_mode"`
	SSID            string               `yaml:"ssid,omitempty"`
	BSSID           string               `yaml:"bssid,omitempty"`
	RSSI            int                  `yaml:"rssi"`
	Noise           int                  `yaml:"noise"`
	Security        labels.Security      `yaml:"security"`
	TransmitRate    float64              `yaml:"transmit_rate"`
	CountryCode     string               `yaml:"country,omitempty"`
	Mode            labels.InterfaceMode `yaml:"mode"`
	TransmitPower   int                  `yaml:"transmit_power"`
	HardwareAddress string               `yaml:"hardware_address,omitempty"`
	ServiceActive   bool                 `yaml:"service_active"`
}

// SnapshotNetwork is a Network as written in a snapshot file.
type SnapshotNetwork struct {
	SSID           string          `yaml:"ssid,omitempty"`
	BSSID          string          `yaml:"bssid,omitempty"`
	Channel        Channel         `yaml:"channel"`
	RSSI           int             `yaml:"rssi"`
	Noise          int             `yaml:"noise"`
	CountryCode    string          `yaml:"country,omitempty"`
	BeaconInterval int             `yaml:"beacon_interval"`
	IBSS           bool            `yaml:"ibss"`
	Security       labels.Security `yaml:"security"`
}

func (s SnapshotInterface) record() *Interface {
	iface := &Interface{
		Name:            s.Name,
		PowerOn:         s.PowerOn,
		PHYMode:         s.PHYMode,
		SSID:            fields.Optional(s.SSID),
		BSSID:           fields.Optional(s.BSSID),
		RSSI:            s.RSSI,
		Noise:           s.Noise,
		Security:        s.Security,
		TransmitRate:    s.TransmitRate,
		CountryCode:     fields.Optional(s.CountryCode),
		Mode:            s.Mode,
		TransmitPower:   s.TransmitPower,
		HardwareAddress: fields.Optional(s.HardwareAddress),
		ServiceActive:   s.ServiceActive,
	}
	if s.SSID != "" {
		iface.SSIDData = []byte(s.SSID)
	}
	if s.Channel != nil {
		ch := *s.Channel
		iface.Channel = &ch
	}
	return iface
}

func (s SnapshotNetwork) record() Network {
	n := Network{
		SSID:           fields.Optional(s.SSID),
		BSSID:          fields.Optional(s.BSSID),
		Channel:        s.Channel,
		RSSI:           s.RSSI,
		Noise:          s.Noise,
		CountryCode:    fields.Optional(s.CountryCode),
		BeaconInterval: s.BeaconInterval,
		IBSS:           s.IBSS,
		Security:       s.Security,
	}
	if s.SSID != "" {
		n.SSIDData = []byte(s.SSID)
	}
	return n
}

// SnapshotClient serves the contents of a Snapshot. Associate succeeds for
// any network in the snapshot and remembers the last one joined.
type SnapshotClient struct {
	snapshot   Snapshot
	logger     *zap.Logger
	associated *Association
}

var _ Client = (*SnapshotClient)(nil)

// LoadSnapshot reads a snapshot file.
func LoadSnapshot(path string, logger *zap.Logger) (*SnapshotClient, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return ParseSnapshot(data, logger)
}

// ParseSnapshot decodes snapshot YAML.
func ParseSnapshot(data []byte, logger *zap.Logger) (*SnapshotClient, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, NewParseError("snapshot", "failed to parse snapshot", err)
	}
	seen := make(map[string]bool)
	for _, iface := range snap.Interfaces {
		if iface.Name == "" {
			return nil, NewParseError("snapshot", "interface without a name", nil)
		}
		if seen[iface.Name] {
			return nil, NewParseError("snapshot", fmt.Sprintf("duplicate interface %q", iface.Name), nil)
		}
		seen[iface.Name] = true
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("snapshot loaded",
		zap.Int("interfaces", len(snap.Interfaces)),
		zap.Int("networks", len(snap.Networks)),
	)
	return &SnapshotClient{snapshot: snap, logger: logger}, nil
}

func (c *SnapshotClient) InterfaceNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(c.snapshot.Interfaces))
	for _, iface := range c.snapshot.Interfaces {
		names = append(names, iface.Name)
	}
	return names, nil
}

func (c *SnapshotClient) lookup(op, name string) (SnapshotInterface, error) {
	if name == "" {
		name = c.snapshot.DefaultInterface
	}
	for _, iface := range c.snapshot.Interfaces {
		if name == "" || iface.Name == name {
			return iface, nil
		}
	}
	if name == "" {
		return SnapshotInterface{}, NewNotFoundError(op, "snapshot has no interfaces")
	}
	return SnapshotInterface{}, NewNotFoundError(op, fmt.Sprintf("no interface named %q", name))
}

func (c *SnapshotClient) Interface(ctx context.Context, name string) (*Interface, error) {
	iface, err := c.lookup("current", name)
	if err != nil {
		return nil, err
	}
	return iface.record(), nil
}

func (c *SnapshotClient) Scan(ctx context.Context, iface, ssid string) ([]Network, error) {
	if _, err := c.lookup("scan", iface); err != nil {
		return nil, err
	}
	return filterSSID(c.networks(), ssid), nil
}

func (c *SnapshotClient) Associate(ctx context.Context, iface string, network Network, password string) error {
	found, err := c.lookup("associate", iface)
	if err != nil {
		return err
	}
	bssid, _ := network.BSSID.Get()
	if _, ok := FindByBSSID(c.networks(), bssid); !ok {
		return NewNotFoundError("associate", fmt.Sprintf("no network with BSSID %q in snapshot", bssid))
	}
	c.associated = &Association{Interface: found.Name, Network: network, Password: password}
	c.logger.Info("associated",
		zap.String("interface", found.Name),
		zap.String("bssid", bssid),
	)
	return nil
}

// Associated returns the last successful association, or nil.
func (c *SnapshotClient) Associated() *Association {
	return c.associated
}

func (c *SnapshotClient) networks() []Network {
	networks := make([]Network, 0, len(c.snapshot.Networks))
	for _, n := range c.snapshot.Networks {
		networks = append(networks, n.record())
	}
	return networks
}
