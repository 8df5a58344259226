// Package fields defines the flat, string-valued records that sit between the
// Wi-Fi backends and the output formatter.
package fields

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
)

// Placeholder is shown in tty output for a field whose value is absent.
const Placeholder = "N/A"

// Value is either a present string or absent. The zero Value is absent.
type Value struct {
	s  string
	ok bool
}

// Absent is the absent Value.
var Absent = Value{}

// Present wraps s as a present Value. An empty string is still present.
func Present(s string) Value {
	return Value{s: s, ok: true}
}

// Optional returns Present(s) when s is non-empty and Absent otherwise.
func Optional(s string) Value {
	if s == "" {
		return Absent
	}
	return Present(s)
}

// Get returns the string and whether it is present.
func (v Value) Get() (string, bool) {
	return v.s, v.ok
}

// IsPresent reports whether the value is present.
func (v Value) IsPresent() bool {
	return v.ok
}

// Or returns the string if present, otherwise fallback.
func (v Value) Or(fallback string) string {
	if v.ok {
		return v.s
	}
	return fallback
}

// String returns the display form: the string, or Placeholder when absent.
func (v Value) String() string {
	return v.Or(Placeholder)
}

// MarshalJSON encodes a present value as a JSON string and an absent one as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return json.Marshal(v.s)
}

// UnmarshalJSON is the inverse of MarshalJSON. Numbers and booleans are
// accepted and kept in their literal JSON spelling.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = Absent
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Present(s)
		return nil
	}
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = Present(string(raw))
	return nil
}

// Mapping is a flat record of field name to value. Mappings are built once
// per record and not modified afterwards.
type Mapping map[string]Value

// Keys returns the field names in alphabetical order.
func (m Mapping) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// Merge returns a new Mapping holding every entry of the given mappings.
// When a key appears more than once the last mapping wins. Nil mappings
// contribute nothing.
func Merge(mappings ...Mapping) Mapping {
	out := make(Mapping)
	for _, m := range mappings {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
