package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/wlaninfo/internal/cli"
	"github.com/muurk/wlaninfo/internal/config"
	"github.com/muurk/wlaninfo/internal/logging"
	"github.com/muurk/wlaninfo/internal/output"
	"github.com/muurk/wlaninfo/internal/ui"
	"github.com/muurk/wlaninfo/internal/version"
	"github.com/muurk/wlaninfo/internal/wlan"
)

const programName = "wlaninfo"

// rootFlags holds the values bound to the root command's flags.
type rootFlags struct {
	action      string
	format      string
	iface       string
	ssid        string
	bssid       string
	password    string
	timestamp   bool
	interactive bool
	backend     string
	snapshot    string
	configPath  string
	logLevel    string
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:   programName + " [action]",
		Short: "Wi-Fi interface and network information",
		Long: `Report on Wi-Fi interfaces, the current connection and nearby networks.

Output is a human-readable table (tty) or one JSON object per line (json).
Running without an action shows the current connection.`,
		Example: `  # Current connection
  wlaninfo

  # Nearby networks as JSON
  wlaninfo -action scan -format json

  # Join a network by BSSID or by a configured alias
  wlaninfo -action associate -bssid 3c:37:86:aa:bb:01 -password secret

  # Choose a network from a list
  wlaninfo associate -interactive`,
		Version:       version.Full(),
		Args:          actionArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Initialize(f.logLevel); err != nil {
				return &cli.UsageError{Message: err.Error()}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, f, args, stdin, stdout, stderr)
		},
	}

	// Disable automatic completion command generation
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(stderr)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cli.UsageError{Message: err.Error()}
	})

	flags := root.Flags()
	flags.StringVar(&f.action, "action", "", "Action: interfaces, current, scan or associate (default current)")
	flags.StringVar(&f.format, "format", "", "Output format: "+output.FormatNames()+" (default from config, else tty)")
	flags.StringVar(&f.iface, "interface", "", "Wi-Fi interface (default from config, else the first one found)")
	flags.StringVar(&f.ssid, "ssid", "", "Only scan for this network name")
	flags.StringVar(&f.bssid, "bssid", "", "BSSID or alias to associate with")
	flags.StringVar(&f.password, "password", "", "Password for associate")
	flags.BoolVar(&f.timestamp, "timestamp", true, "Add a Timestamp field to current (disable with -timestamp=false)")
	flags.BoolVar(&f.interactive, "interactive", false, "Choose the network for associate from a list")
	flags.StringVar(&f.backend, "backend", "", "Wi-Fi backend: iw or snapshot (default from config, else iw)")
	flags.StringVar(&f.snapshot, "snapshot", "", "Snapshot file for the snapshot backend")

	persistent := root.PersistentFlags()
	persistent.StringVar(&f.configPath, "config", "", "Config file (default is the platform config directory)")
	persistent.StringVar(&f.logLevel, "log-level", "", "Log level: "+strings.Join(logging.Levels, ", ")+" (default silent, or $"+logging.LogLevelEnvVar+")")

	// Register help and version flags now so the single-dash shim sees them.
	root.InitDefaultHelpFlag()
	root.InitDefaultVersionFlag()

	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != root {
			defaultHelp(cmd, args)
			return
		}
		w := cmd.ErrOrStderr()
		fmt.Fprintf(w, "%s\n\n%s\n\nFlags:\n%s\nCommands:\n", cmd.Long, cli.Usage(programName), cmd.Flags().FlagUsages())
		for _, sub := range cmd.Commands() {
			if sub.IsAvailableCommand() {
				fmt.Fprintf(w, "  %-10s %s\n", sub.Name(), sub.Short)
			}
		}
		fmt.Fprintf(w, "\nExamples:\n%s\n", cmd.Example)
	})

	root.AddCommand(newVersionCmd(stdout))
	root.AddCommand(newConfigCmd(f, stdout, stderr))
	return root
}

// actionArgs accepts an optional positional action.
func actionArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return &cli.UsageError{Message: fmt.Sprintf("expected at most one action, got %q", args)}
	}
	return nil
}

func runAction(cmd *cobra.Command, f *rootFlags, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	action := f.action
	if len(args) == 1 {
		if cmd.Flags().Changed("action") && args[0] != f.action {
			return &cli.UsageError{Message: fmt.Sprintf("conflicting actions: -action %s and %s", f.action, args[0])}
		}
		action = args[0]
	}

	reg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	prefs := reg.Preferences

	opts := cli.Options{
		Action:      cli.Action(action),
		Format:      output.Format(pick(cmd, "format", f.format, prefs.Format)),
		Interface:   pick(cmd, "interface", f.iface, prefs.Interface),
		SSID:        f.ssid,
		BSSID:       f.bssid,
		Password:    f.password,
		Timestamp:   prefs.TimestampEnabled(),
		Interactive: f.interactive,
	}
	if cmd.Flags().Changed("timestamp") {
		opts.Timestamp = f.timestamp
	}
	if opts.Action == "" {
		opts.Action = cli.DefaultAction
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	backend := pick(cmd, "backend", f.backend, prefs.Backend)
	client, err := newClient(reg, backend, pick(cmd, "snapshot", f.snapshot, reg.Snapshot))
	if err != nil {
		return err
	}

	d := &cli.Dispatcher{
		Client:       client,
		Stdout:       stdout,
		Stderr:       stderr,
		ResolveAlias: reg.ResolveAlias,
	}
	if f.interactive {
		d.Picker = ui.NewNetworkPicker(stdin, stderr)
	}
	return d.Run(cmd.Context(), opts)
}

// pick returns the flag value when the flag was set, otherwise the
// configured value.
func pick(cmd *cobra.Command, name, flagValue, configured string) string {
	if cmd.Flags().Changed(name) || configured == "" {
		return flagValue
	}
	return configured
}

// newClient builds the Wi-Fi backend named by backend.
func newClient(reg *config.Registry, backend, snapshotPath string) (wlan.Client, error) {
	logger := logging.GetLogger()

	switch backend {
	case "", config.BackendIW:
		settings := reg.IW
		if settings == nil {
			settings = &config.IWSettings{}
		}
		runner := wlan.NewExecRunner(settings.Timeout, logger)
		return wlan.NewIWClient(wlan.IWConfig{
			IWPath:    settings.IWPath,
			IPPath:    settings.IPPath,
			NmcliPath: settings.NmcliPath,
		}, runner, logger), nil

	case config.BackendSnapshot:
		if snapshotPath == "" {
			return nil, &cli.UsageError{Message: "The snapshot backend requires a -snapshot file"}
		}
		client, err := wlan.LoadSnapshot(snapshotPath, logger)
		if err != nil {
			return nil, err
		}
		return client, nil

	default:
		return nil, &cli.UsageError{Message: fmt.Sprintf("Unrecognized backend: %s", backend)}
	}
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "%s %s\n", programName, version.Full())
		},
	}
}
