// Package wlan is the boundary to the host's Wi-Fi stack.
//
// It defines the records a backend reports (Channel, Network, Interface) and
// the Client interface the command dispatcher calls. Records are read-only
// snapshots: they are created by a single backend call and never mutated.
//
// # Backends
//
//   - IWClient drives the Linux nl80211 tools (iw, ip) and NetworkManager
//     (nmcli) through a Runner, parsing their text output.
//   - SnapshotClient serves interfaces and networks loaded from a YAML file.
//   - StubClient is an in-memory client for tests.
//
// # Blocking
//
// Scan and Associate can take several seconds. They block until the
// underlying tool returns; the only way to abandon them is to cancel the
// context. No backend retries a failed call.
//
// # Errors
//
// Backend failures are returned as *Error, classified by ErrorType:
//
//	names, err := client.InterfaceNames(ctx)
//	if wlan.IsCommandError(err) {
//	    fmt.Fprintln(os.Stderr, wlan.TroubleshootingHint(err))
//	}
package wlan
