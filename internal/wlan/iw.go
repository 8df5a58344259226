package wlan

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/muurk/wlaninfo/internal/fields"
	"github.com/muurk/wlaninfo/internal/labels"
)

// IWConfig holds the tool paths and defaults for IWClient.
type IWConfig struct {
	// IWPath is the iw binary. Default: "iw" (searches PATH)
	IWPath string

	// IPPath is the ip binary from iproute2. Default: "ip"
	IPPath string

	// NmcliPath is the NetworkManager CLI used for association. Default: "nmcli"
	NmcliPath string
}

// DefaultIWConfig returns an IWConfig that looks the tools up in PATH.
func DefaultIWConfig() IWConfig {
	return IWConfig{
		IWPath:    "iw",
		IPPath:    "ip",
		NmcliPath: "nmcli",
	}
}

// IWClient implements Client on Linux using iw, ip and nmcli.
type IWClient struct {
	config IWConfig
	runner Runner
	logger *zap.Logger
}

var _ Client = (*IWClient)(nil)

// NewIWClient creates a client. Empty tool paths fall back to the defaults.
func NewIWClient(config IWConfig, runner Runner, logger *zap.Logger) *IWClient {
	defaults := DefaultIWConfig()
	if config.IWPath == "" {
		config.IWPath = defaults.IWPath
	}
	if config.IPPath == "" {
		config.IPPath = defaults.IPPath
	}
	if config.NmcliPath == "" {
		config.NmcliPath = defaults.NmcliPath
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IWClient{config: config, runner: runner, logger: logger}
}

func (c *IWClient) run(ctx context.Context, op, tool string, args ...string) (string, error) {
	stdout, stderr, err := c.runner.Run(ctx, tool, args...)
	if err != nil {
		return "", NewCommandError(op, tool, stderr, err)
	}
	return stdout, nil
}

// InterfaceNames lists interfaces reported by `iw dev`.
func (c *IWClient) InterfaceNames(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, "interfaces", c.config.IWPath, "dev")
	if err != nil {
		return nil, err
	}
	return parseDevList(out), nil
}

// resolve returns name, or the first interface from `iw dev` when name is empty.
func (c *IWClient) resolve(ctx context.Context, op, name string) (string, error) {
	if name != "" {
		return name, nil
	}
	names, err := c.InterfaceNames(ctx)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", NewNotFoundError(op, "no Wi-Fi interfaces found")
	}
	return names[0], nil
}

// Interface assembles the interface state from several iw and ip queries.
// Only `iw dev <if> info` is required; the other queries run concurrently,
// fill in what they can and are skipped with a debug log when they fail.
func (c *IWClient) Interface(ctx context.Context, name string) (*Interface, error) {
	const op = "current"
	name, err := c.resolve(ctx, op, name)
	if err != nil {
		return nil, err
	}

	out, err := c.run(ctx, op, c.config.IWPath, "dev", name, "info")
	if err != nil {
		return nil, err
	}
	info := parseDevInfo(out)

	iface := &Interface{
		Name:            name,
		Channel:         info.channel,
		Mode:            info.mode,
		TransmitPower:   dBmToMilliwatts(info.txPowerDBm),
		HardwareAddress: fields.Optional(info.addr),
		Security:        labels.SecurityUnknown,
	}

	// The remaining queries are independent and each is optional.
	var (
		g       errgroup.Group
		link    linkInfo
		linkErr error
	)
	g.Go(func() error {
		out, err := c.run(ctx, op, c.config.IPPath, "-o", "link", "show", "dev", name)
		if err != nil {
			c.logger.Debug("link flags unavailable", zap.String("interface", name), zap.Error(err))
			return nil
		}
		iface.PowerOn, iface.ServiceActive = parseLinkFlags(out)
		return nil
	})
	g.Go(func() error {
		out, err := c.run(ctx, op, c.config.IWPath, "reg", "get")
		if err != nil {
			c.logger.Debug("regulatory domain unavailable", zap.Error(err))
			return nil
		}
		iface.CountryCode = parseRegCountry(out)
		return nil
	})
	g.Go(func() error {
		var out string
		if out, linkErr = c.run(ctx, op, c.config.IWPath, "dev", name, "link"); linkErr == nil {
			link = parseLink(out)
		}
		return nil
	})
	_ = g.Wait()

	if linkErr != nil {
		c.logger.Debug("link state unavailable", zap.String("interface", name), zap.Error(linkErr))
		return iface, nil
	}
	if !link.connected {
		return iface, nil
	}

	band := labels.BandUnknown
	if iface.Channel != nil {
		band = iface.Channel.Band
	} else if link.freq != 0 {
		band = bandFromFreq(link.freq)
	}

	iface.SSID = fields.Optional(link.ssid)
	if link.ssid != "" {
		iface.SSIDData = []byte(link.ssid)
	}
	iface.BSSID = fields.Present(link.bssid)
	iface.RSSI = link.signal
	iface.TransmitRate = link.txRate
	iface.PHYMode = phyModeFromBitrate(link.txBitrate, link.txRate, band)

	var bss errgroup.Group
	bss.Go(func() error {
		out, err := c.run(ctx, op, c.config.IWPath, "dev", name, "survey", "dump")
		if err != nil {
			c.logger.Debug("survey unavailable", zap.String("interface", name), zap.Error(err))
			return nil
		}
		noise, inUse := parseSurvey(out)
		if inUse == 0 {
			inUse = link.freq
		}
		iface.Noise = noise[inUse]
		return nil
	})
	// The cached scan results carry the security elements of the current BSS.
	bss.Go(func() error {
		out, err := c.run(ctx, op, c.config.IWPath, "dev", name, "scan", "dump")
		if err != nil {
			c.logger.Debug("scan dump unavailable", zap.String("interface", name), zap.Error(err))
			return nil
		}
		if n, ok := FindByBSSID(parseScan(out), link.bssid); ok {
			iface.Security = n.Security
		}
		return nil
	})
	_ = bss.Wait()

	return iface, nil
}

// Scan triggers `iw dev <if> scan` and fills in noise from the survey.
func (c *IWClient) Scan(ctx context.Context, iface, ssid string) ([]Network, error) {
	const op = "scan"
	iface, err := c.resolve(ctx, op, iface)
	if err != nil {
		return nil, err
	}

	args := []string{"dev", iface, "scan"}
	if ssid != "" {
		args = append(args, "ssid", ssid)
	}

	c.logger.Info("scanning", zap.String("interface", iface), zap.String("ssid", ssid))
	out, err := c.run(ctx, op, c.config.IWPath, args...)
	if err != nil {
		return nil, err
	}
	networks := parseScan(out)

	if out, err := c.run(ctx, op, c.config.IWPath, "dev", iface, "survey", "dump"); err == nil {
		noise, _ := parseSurvey(out)
		for i := range networks {
			if freq := freqOf(networks[i].Channel); freq != 0 {
				networks[i].Noise = noise[freq]
			}
		}
	} else {
		c.logger.Debug("survey unavailable", zap.String("interface", iface), zap.Error(err))
	}

	c.logger.Info("scan complete", zap.String("interface", iface), zap.Int("networks", len(networks)))
	return networks, nil
}

// Associate joins network through NetworkManager. iw itself can only join
// open networks, so nmcli handles the key exchange.
func (c *IWClient) Associate(ctx context.Context, iface string, network Network, password string) error {
	const op = "associate"
	iface, err := c.resolve(ctx, op, iface)
	if err != nil {
		return err
	}
	bssid, ok := network.BSSID.Get()
	if !ok {
		return NewUnsupportedError(op, "network has no BSSID")
	}

	args := []string{"device", "wifi", "connect", bssid, "ifname", iface}

	c.logger.Info("associating",
		zap.String("interface", iface),
		zap.String("bssid", bssid),
		zap.String("ssid", network.SSID.Or("")),
	)
	if password == "" {
		_, err = c.run(ctx, op, c.config.NmcliPath, args...)
		return err
	}
	// --ask makes nmcli read the secret from stdin instead of argv.
	args = append([]string{"--ask"}, args...)
	_, stderr, err := c.runner.RunWithInput(ctx, password+"\n", c.config.NmcliPath, args...)
	if err != nil {
		return NewCommandError(op, c.config.NmcliPath, stderr, err)
	}
	return nil
}

// freqOf returns the centre frequency in MHz of a channel's primary number.
func freqOf(ch Channel) int {
	switch ch.Band {
	case labels.Band2GHz:
		if ch.Number == 14 {
			return 2484
		}
		return 2407 + 5*ch.Number
	case labels.Band5GHz:
		return 5000 + 5*ch.Number
	case labels.Band6GHz:
		if ch.Number == 2 {
			return 5935
		}
		return 5950 + 5*ch.Number
	default:
		return 0
	}
}

// String describes the client for log output.
func (c *IWClient) String() string {
	return fmt.Sprintf("iw(%s)", c.config.IWPath)
}
