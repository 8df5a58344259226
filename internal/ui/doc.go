// Package ui provides the terminal presentation pieces of wlaninfo that sit
// outside the rendered document: status and error lines on stderr, and the
// interactive network picker.
//
// # Styling
//
// Status output is styled with Lipgloss only when stderr is a terminal.
// When stderr is redirected the same text is written plain, so scripts can
// match messages such as "No network matching bssid found!" exactly.
//
// # Network Picker
//
// `wlaninfo -action associate -interactive` runs a Bubble Tea program on
// stderr that lists the scan results. Choosing a secured network asks for
// its password in a masked text input:
//
//	picker := ui.NewNetworkPicker(os.Stdin, os.Stderr)
//	network, password, err := picker.Pick(ctx, networks)
//	if errors.Is(err, ui.ErrCancelled) {
//	    return nil
//	}
//
// # Logging Integration
//
// zap logging is silent unless WLANINFO_LOG_LEVEL or -log-level is set, so
// the picker and status lines are not interleaved with log output by
// default.
package ui
