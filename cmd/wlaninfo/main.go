// Wlaninfo reports on Wi-Fi interfaces and nearby networks.
//
// It lists wireless interfaces, shows the current connection, scans for
// networks and associates with a network chosen by BSSID. Output is a
// human-readable table or newline-delimited JSON.
//
// Usage:
//
//	wlaninfo [-action interfaces|current|scan|associate] [flags]
//
// Running without arguments is the same as -action current.
// See 'wlaninfo -help' for available flags.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/muurk/wlaninfo/internal/cli"
	"github.com/muurk/wlaninfo/internal/logging"
	"github.com/muurk/wlaninfo/internal/ui"
	"github.com/muurk/wlaninfo/internal/wlan"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	defer logging.Sync()

	root := newRootCmd(stdin, stdout, stderr)
	root.SetArgs(normalizeArgs(root, args))

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if cli.IsUsageError(err) {
		_, _ = io.WriteString(stderr, err.Error()+"\n")
		_, _ = io.WriteString(stderr, cli.Usage(programName)+"\n")
		return 1
	}

	logging.Error("command failed", zap.Error(err))
	ui.NewReporter(stderr).Error(err, wlan.TroubleshootingHint(err))
	return 1
}
