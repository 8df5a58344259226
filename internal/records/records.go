package records

import (
	"strconv"

	"github.com/muurk/wlaninfo/internal/fields"
	"github.com/muurk/wlaninfo/internal/wlan"
)

// Field names shared by the builders and the dispatcher's column list.
const (
	KeyChannelNumber   = "ChannelNumber"
	KeyChannelBand     = "ChannelBand"
	KeyChannelWidth    = "ChannelWidth"
	KeySSID            = "SSID"
	KeyBSSID           = "BSSID"
	KeyRSSI            = "RSSI"
	KeyNoise           = "Noise"
	KeyCountry         = "Country"
	KeyBeaconInterval  = "BeaconInterval"
	KeyIBSS            = "IBSS"
	KeySecurity        = "Security"
	KeyName            = "Name"
	KeyPowerOn         = "PowerOn"
	KeyActivePHYMode   = "ActivePHYMode"
	KeyTransmitRate    = "TransmitRate"
	KeyInterfaceMode   = "InterfaceMode"
	KeyTransmitPower   = "TransmitPower"
	KeyHardwareAddress = "HardwareAddress"
	KeyServiceActive   = "ServiceActive"
)

// Channel returns the channel number, band and width.
func Channel(ch wlan.Channel) fields.Mapping {
	return fields.Mapping{
		KeyChannelNumber: itoa(ch.Number),
		KeyChannelBand:   fields.Present(ch.Band.String()),
		KeyChannelWidth:  fields.Present(ch.Width.String()),
	}
}

// Network returns the fields of a scanned network merged with its channel.
func Network(n wlan.Network) fields.Mapping {
	m := fields.Mapping{
		KeySSID:           n.SSID,
		KeyBSSID:          n.BSSID,
		KeyRSSI:           itoa(n.RSSI),
		KeyNoise:          itoa(n.Noise),
		KeyCountry:        n.CountryCode,
		KeyBeaconInterval: itoa(n.BeaconInterval),
		KeyIBSS:           boolean(n.IBSS),
		KeySecurity:       fields.Present(n.Security.String()),
	}
	return fields.Merge(m, Channel(n.Channel))
}

// Interface returns the fields of an interface. Channel fields are merged
// in only when the interface is on a channel.
func Interface(iface wlan.Interface) fields.Mapping {
	m := fields.Mapping{
		KeyName:            fields.Present(iface.Name),
		KeyPowerOn:         boolean(iface.PowerOn),
		KeyActivePHYMode:   fields.Present(iface.PHYMode.String()),
		KeySSID:            iface.SSID,
		KeyBSSID:           iface.BSSID,
		KeyRSSI:            itoa(iface.RSSI),
		KeyNoise:           itoa(iface.Noise),
		KeySecurity:        fields.Present(iface.Security.String()),
		KeyTransmitRate:    fields.Present(strconv.FormatFloat(iface.TransmitRate, 'f', -1, 64)),
		KeyCountry:         iface.CountryCode,
		KeyInterfaceMode:   fields.Present(iface.Mode.String()),
		KeyTransmitPower:   itoa(iface.TransmitPower),
		KeyHardwareAddress: iface.HardwareAddress,
		KeyServiceActive:   boolean(iface.ServiceActive),
	}
	if iface.Channel == nil {
		return m
	}
	return fields.Merge(m, Channel(*iface.Channel))
}

// Networks builds one mapping per network, preserving order.
func Networks(networks []wlan.Network) []fields.Mapping {
	out := make([]fields.Mapping, 0, len(networks))
	for _, n := range networks {
		out = append(out, Network(n))
	}
	return out
}

func itoa(n int) fields.Value {
	return fields.Present(strconv.Itoa(n))
}

func boolean(b bool) fields.Value {
	return fields.Present(strconv.FormatBool(b))
}
