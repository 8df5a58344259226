// Package labels holds the display labels for the enumerated Wi-Fi values
// reported by an interface or a scan: channel band, channel width, PHY mode,
// interface mode and security type.
//
// Every table is total over the values a backend can produce. A lookup miss
// means a table is incomplete, which is a programming error, so the String
// methods panic instead of returning an error:
//
//	labels.Band5GHz.String()   // "5GHz"
//	labels.PHYModeNone.String() // ""
//
// The Parse functions reverse the tables and are used when records are read
// from text (snapshot files, command output):
//
//	band, err := labels.ParseChannelBand("5GHz")
//
// The tables are package-level and never written after init, so they are
// safe for concurrent use.
package labels
