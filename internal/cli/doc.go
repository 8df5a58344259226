// Package cli routes a wlaninfo action to the Wi-Fi backend and writes the
// result through the output formatter.
//
// The Dispatcher knows nothing about flags or exit codes; cmd/wlaninfo maps
// flags to Options and errors to exit statuses. Errors returned from Run
// fall into three groups:
//
//   - *UsageError: the options are invalid; the caller prints usage.
//   - *wlan.Error: the backend failed; wlan.TroubleshootingHint has advice.
//   - *output.SerializationError: the document could not be encoded and
//     nothing was written.
//
// A BSSID that does not appear in the scan results is not an error: the
// dispatcher reports it on stderr and returns nil without associating.
package cli
