package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/wlaninfo/internal/fields"
	"github.com/muurk/wlaninfo/internal/logging"
	"github.com/muurk/wlaninfo/internal/output"
	"github.com/muurk/wlaninfo/internal/records"
	"github.com/muurk/wlaninfo/internal/ui"
	"github.com/muurk/wlaninfo/internal/wlan"
)

// KeyTimestamp is the field added to current output.
const KeyTimestamp = "Timestamp"

// ScanColumns is the tty column order for scan results.
var ScanColumns = []string{
	records.KeySSID,
	records.KeyBSSID,
	records.KeyChannelNumber,
	records.KeyChannelBand,
	records.KeyChannelWidth,
	records.KeyRSSI,
	records.KeyNoise,
	records.KeyCountry,
}

// Picker chooses a network interactively.
type Picker interface {
	Pick(ctx context.Context, networks []wlan.Network) (wlan.Network, string, error)
}

// Dispatcher runs actions against a Wi-Fi client.
type Dispatcher struct {
	Client wlan.Client
	Stdout io.Writer
	Stderr io.Writer

	// Now stamps current output. Defaults to time.Now.
	Now func() time.Time

	// Picker is used by associate -interactive. Nil disables it.
	Picker Picker

	// ResolveAlias maps a BSSID alias to a BSSID. Nil leaves BSSIDs as given.
	ResolveAlias func(string) string
}

// Run performs opts.Action and writes its document to Stdout.
func (d *Dispatcher) Run(ctx context.Context, opts Options) error {
	if opts.Action == "" {
		opts.Action = DefaultAction
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if opts.Format == "" {
		opts.Format = output.FormatTTY
	} else {
		opts.Format, _ = output.ParseFormat(string(opts.Format))
	}

	logging.Debug("dispatching",
		zap.String("action", string(opts.Action)),
		zap.String("format", opts.Format.String()),
		zap.String("interface", opts.Interface),
	)

	switch opts.Action {
	case ActionInterfaces:
		return d.interfaces(ctx, opts)
	case ActionCurrent:
		return d.current(ctx, opts)
	case ActionScan:
		return d.scan(ctx, opts)
	case ActionAssociate:
		return d.associate(ctx, opts)
	default:
		return &UsageError{Message: "Unrecognized action: " + string(opts.Action)}
	}
}

func (d *Dispatcher) interfaces(ctx context.Context, opts Options) error {
	names, err := d.Client.InterfaceNames(ctx)
	if err != nil {
		return err
	}
	return output.Write(d.Stdout, output.List{Items: names}, opts.Format)
}

func (d *Dispatcher) current(ctx context.Context, opts Options) error {
	iface, err := d.Client.Interface(ctx, opts.Interface)
	if err != nil {
		return err
	}
	m := records.Interface(*iface)
	if opts.Timestamp {
		m = fields.Merge(m, fields.Mapping{KeyTimestamp: fields.Present(d.timestamp())})
	}
	return output.Write(d.Stdout, output.Record{Fields: m}, opts.Format)
}

func (d *Dispatcher) scan(ctx context.Context, opts Options) error {
	networks, err := d.scanNetworks(ctx, opts)
	if err != nil {
		return err
	}
	doc := output.Table{Records: records.Networks(networks), Columns: ScanColumns}
	return output.Write(d.Stdout, doc, opts.Format)
}

// scanNetworks runs a scan behind a spinner on stderr.
func (d *Dispatcher) scanNetworks(ctx context.Context, opts Options) ([]wlan.Network, error) {
	stop := ui.StartSpinner(d.Stderr, "Scanning for networks...")
	defer stop()
	return d.Client.Scan(ctx, opts.Interface, opts.SSID)
}

func (d *Dispatcher) associate(ctx context.Context, opts Options) error {
	if opts.BSSID == "" && d.Picker == nil {
		return &UsageError{Message: "interactive selection is not available"}
	}
	status := ui.NewReporter(d.Stderr)

	networks, err := d.scanNetworks(ctx, opts)
	if err != nil {
		return err
	}

	bssid := opts.BSSID
	password := opts.Password
	if bssid == "" {
		network, pw, err := d.Picker.Pick(ctx, networks)
		if errors.Is(err, ui.ErrCancelled) {
			logging.Info("network selection cancelled")
			return nil
		}
		if err != nil {
			return err
		}
		bssid = network.BSSID.Or("")
		if pw != "" {
			password = pw
		}
	} else if d.ResolveAlias != nil {
		if resolved := d.ResolveAlias(bssid); resolved != bssid {
			logging.Debug("resolved bssid alias", zap.String("alias", bssid), zap.String("bssid", resolved))
			bssid = resolved
		}
	}

	status.Status("Associating with bssid: %s", bssid)
	target, ok := wlan.FindByBSSID(networks, bssid)
	if !ok {
		status.Warn("No network matching bssid found!")
		return nil
	}

	if err := d.Client.Associate(ctx, opts.Interface, target, password); err != nil {
		return err
	}
	logging.Info("associated", zap.String("bssid", bssid), zap.String("ssid", target.SSID.Or("")))
	return nil
}

// timestamp returns seconds since the epoch with microsecond precision.
func (d *Dispatcher) timestamp() string {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	t := now()
	return fmt.Sprintf("%d.%06d", t.Unix(), t.Nanosecond()/int(time.Microsecond))
}

