// Package records flattens Wi-Fi records into field mappings.
//
// Every value is converted to its display string here, so the output
// package only ever sees string-or-absent values. Enumerations use the
// label tables from the labels package; optional strings stay absent and
// render as the placeholder at the formatting boundary. Raw byte payloads
// (SSID bytes, information elements) are never included.
package records
