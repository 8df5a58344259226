package wlan

import (
	"bufio"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/muurk/wlaninfo/internal/fields"
	"github.com/muurk/wlaninfo/internal/labels"
)

// Parsers for the text output of iw(8) and ip(8). The formats are not
// stable across iw releases, so every parser ignores lines it does not
// recognise rather than failing on them.

var (
	bssHeaderRE   = regexp.MustCompile(`^BSS ([0-9a-fA-F]{2}(?::[0-9a-fA-F]{2}){5})`)
	channelLineRE = regexp.MustCompile(`^channel (\d+) \((\d+) MHz\)(?:, width: (\d+))?`)
	connectedRE   = regexp.MustCompile(`^Connected to ([0-9a-fA-F]{2}(?::[0-9a-fA-F]{2}){5})`)
	leadingNumRE  = regexp.MustCompile(`^-?\d+(?:\.\d+)?`)
	linkFlagsRE   = regexp.MustCompile(`<([^>]*)>`)
	countryLineRE = regexp.MustCompile(`^country ([A-Z0-9]{2}):`)
)

// devInfo is the subset of `iw dev <if> info` this package uses.
type devInfo struct {
	addr       string
	mode       labels.InterfaceMode
	channel    *Channel
	txPowerDBm float64
}

// linkInfo is the subset of `iw dev <if> link` this package uses.
type linkInfo struct {
	connected bool
	bssid     string
	ssid      string
	freq      int
	signal    int
	txBitrate string
	txRate    float64
}

// parseDevList extracts interface names from `iw dev`.
func parseDevList(out string) []string {
	var names []string
	for _, line := range lines(out) {
		if name, ok := strings.CutPrefix(line, "Interface "); ok {
			names = append(names, strings.TrimSpace(name))
		}
	}
	return names
}

// parseDevInfo parses `iw dev <if> info`.
func parseDevInfo(out string) devInfo {
	var info devInfo
	for _, line := range lines(out) {
		switch {
		case strings.HasPrefix(line, "addr "):
			info.addr = strings.TrimSpace(strings.TrimPrefix(line, "addr "))
		case strings.HasPrefix(line, "type "):
			info.mode = interfaceModeFromIW(strings.TrimSpace(strings.TrimPrefix(line, "type ")))
		case strings.HasPrefix(line, "channel "):
			if m := channelLineRE.FindStringSubmatch(line); m != nil {
				number, _ := strconv.Atoi(m[1])
				freq, _ := strconv.Atoi(m[2])
				width := labels.Width20MHz
				if m[3] != "" {
					width = widthFromMHz(m[3])
				}
				info.channel = &Channel{Number: number, Band: bandFromFreq(freq), Width: width}
			}
		case strings.HasPrefix(line, "txpower "):
			info.txPowerDBm = leadingFloat(strings.TrimPrefix(line, "txpower "))
		}
	}
	return info
}

// parseLink parses `iw dev <if> link`.
func parseLink(out string) linkInfo {
	var link linkInfo
	for _, line := range lines(out) {
		if m := connectedRE.FindStringSubmatch(line); m != nil {
			link.connected = true
			link.bssid = strings.ToLower(m[1])
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch key {
		case "SSID":
			link.ssid = string(unescapeSSID(value))
		case "freq":
			link.freq = int(leadingFloat(value))
		case "signal":
			link.signal = int(math.Round(leadingFloat(value)))
		case "tx bitrate":
			link.txBitrate = value
			link.txRate = leadingFloat(value)
		}
	}
	return link
}

// parseSurvey parses `iw dev <if> survey dump` into noise per frequency and
// the frequency marked [in use], or 0 if none is.
func parseSurvey(out string) (noise map[int]int, inUse int) {
	noise = make(map[int]int)
	freq := 0
	for _, line := range lines(out) {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch key {
		case "frequency":
			freq = int(leadingFloat(value))
			if strings.Contains(value, "[in use]") {
				inUse = freq
			}
		case "noise":
			if freq != 0 {
				noise[freq] = int(math.Round(leadingFloat(value)))
			}
		}
	}
	return noise, inUse
}

// parseRegCountry returns the country of the first regulatory domain in
// `iw reg get`. The world domain "00" counts as no country.
func parseRegCountry(out string) fields.Value {
	for _, line := range lines(out) {
		if m := countryLineRE.FindStringSubmatch(line); m != nil {
			if m[1] == "00" {
				return fields.Absent
			}
			return fields.Present(m[1])
		}
	}
	return fields.Absent
}

// parseLinkFlags parses `ip -o link show dev <if>` and reports whether the
// interface is administratively up and whether it has carrier.
func parseLinkFlags(out string) (up, lowerUp bool) {
	m := linkFlagsRE.FindStringSubmatch(out)
	if m == nil {
		return false, false
	}
	for _, flag := range strings.Split(m[1], ",") {
		switch flag {
		case "UP":
			up = true
		case "LOWER_UP":
			lowerUp = true
		}
	}
	return up, lowerUp
}

// unescapeSSID reverses iw's SSID escaping. iw prints bytes that are not
// printable ASCII, backslashes, and leading or trailing spaces as \xNN.
func unescapeSSID(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+4 <= len(s) && s[i+1] == 'x' {
			if b, err := strconv.ParseUint(s[i+2:i+4], 16, 8); err == nil {
				out = append(out, byte(b))
				i += 3
				continue
			}
		}
		out = append(out, s[i])
	}
	return out
}

// scanEntry accumulates one BSS block of `iw dev <if> scan`.
type scanEntry struct {
	network     Network
	freq        int
	primary     int
	privacy     bool
	rsn         []string
	wpa         []string
	section     string
	secondaryHT bool
	staWidthAny bool
	vhtWidth    int
}

// parseScan parses `iw dev <if> scan` and `iw dev <if> scan dump`.
func parseScan(out string) []Network {
	var (
		networks []Network
		cur      *scanEntry
	)
	flush := func() {
		if cur != nil {
			networks = append(networks, cur.finish())
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		raw := scanner.Text()
		if m := bssHeaderRE.FindStringSubmatch(raw); m != nil {
			flush()
			cur = &scanEntry{}
			cur.network.BSSID = fields.Present(strings.ToLower(m[1]))
			continue
		}
		if cur == nil {
			continue
		}
		cur.line(raw)
	}
	flush()
	return networks
}

func (e *scanEntry) line(raw string) {
	nested := strings.HasPrefix(raw, "\t\t") || strings.HasPrefix(raw, "\t *")
	line := strings.TrimSpace(raw)
	if !nested {
		e.section = ""
	}
	line = strings.TrimPrefix(line, "* ")

	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return
	}
	value = strings.TrimSpace(value)

	if nested {
		switch e.section {
		case "RSN":
			if key == "Authentication suites" {
				e.rsn = strings.Fields(value)
			}
		case "WPA":
			if key == "Authentication suites" {
				e.wpa = strings.Fields(value)
			}
		case "HT operation":
			switch key {
			case "primary channel":
				e.primary, _ = strconv.Atoi(value)
			case "secondary channel offset":
				e.secondaryHT = value == "above" || value == "below"
			case "STA channel width":
				e.staWidthAny = value == "any"
			}
		case "VHT operation":
			if key == "channel width" {
				e.vhtWidth, _ = strconv.Atoi(strings.Fields(value + " 0")[0])
			}
		}
		return
	}

	switch key {
	case "freq":
		e.freq = int(leadingFloat(value))
	case "beacon interval":
		e.network.BeaconInterval = int(leadingFloat(value))
	case "capability":
		for _, c := range strings.Fields(value) {
			switch c {
			case "IBSS":
				e.network.IBSS = true
			case "Privacy":
				e.privacy = true
			}
		}
	case "signal":
		e.network.RSSI = int(math.Round(leadingFloat(value)))
	case "SSID":
		if value != "" {
			data := unescapeSSID(value)
			e.network.SSID = fields.Present(string(data))
			e.network.SSIDData = data
		}
	case "Country":
		if code := strings.Fields(value); len(code) > 0 && code[0] != "XX" {
			e.network.CountryCode = fields.Present(code[0])
		}
	case "DS Parameter set":
		if n, err := strconv.Atoi(strings.TrimPrefix(value, "channel ")); err == nil {
			e.primary = n
		}
	case "RSN", "WPA", "HT operation", "VHT operation":
		e.section = key
	}
}

func (e *scanEntry) finish() Network {
	n := e.network
	n.Channel.Band = bandFromFreq(e.freq)
	n.Channel.Number = e.primary
	if n.Channel.Number == 0 {
		n.Channel.Number = channelFromFreq(e.freq)
	}
	switch {
	case e.vhtWidth == 1:
		n.Channel.Width = labels.Width80MHz
	case e.vhtWidth == 2 || e.vhtWidth == 3:
		n.Channel.Width = labels.Width160MHz
	case e.secondaryHT && e.staWidthAny:
		n.Channel.Width = labels.Width40MHz
	case e.freq != 0:
		n.Channel.Width = labels.Width20MHz
	}
	n.Security = securityFromSuites(e.privacy, e.rsn, e.wpa)
	return n
}

// securityFromSuites maps the advertised authentication suites to a
// security type.
func securityFromSuites(privacy bool, rsn, wpa []string) labels.Security {
	has := func(suites []string, name string) bool {
		for _, s := range suites {
			if s == name {
				return true
			}
		}
		return false
	}
	switch {
	case has(rsn, "IEEE") && strings.Contains(strings.Join(rsn, " "), "SUITE-B-192"):
		return labels.SecurityWPA3Enterprise
	case has(rsn, "SAE") && has(rsn, "PSK"):
		return labels.SecurityWPA3Transition
	case has(rsn, "SAE"):
		return labels.SecurityWPA3Personal
	case has(rsn, "PSK") && has(wpa, "PSK"):
		return labels.SecurityWPAPersonalMixed
	case has(rsn, "PSK"):
		return labels.SecurityWPA2Personal
	case has(rsn, "IEEE") && has(wpa, "IEEE"):
		return labels.SecurityWPAEnterpriseMixed
	case has(rsn, "IEEE"):
		return labels.SecurityWPA2Enterprise
	case has(wpa, "PSK"):
		return labels.SecurityWPAPersonal
	case has(wpa, "IEEE"):
		return labels.SecurityWPAEnterprise
	case len(rsn) > 0 || len(wpa) > 0:
		return labels.SecurityUnknown
	case privacy:
		return labels.SecurityWEP
	default:
		return labels.SecurityNone
	}
}

func interfaceModeFromIW(t string) labels.InterfaceMode {
	switch t {
	case "managed":
		return labels.InterfaceModeStation
	case "IBSS":
		return labels.InterfaceModeIBSS
	case "AP", "P2P-GO":
		return labels.InterfaceModeHostAP
	default:
		return labels.InterfaceModeNone
	}
}

func bandFromFreq(freq int) labels.ChannelBand {
	switch {
	case freq >= 2400 && freq < 2500:
		return labels.Band2GHz
	case freq >= 5150 && freq < 5925:
		return labels.Band5GHz
	case freq >= 5925 && freq < 7125:
		return labels.Band6GHz
	default:
		return labels.BandUnknown
	}
}

func channelFromFreq(freq int) int {
	switch {
	case freq == 2484:
		return 14
	case freq >= 2412 && freq < 2484:
		return (freq - 2407) / 5
	case freq == 5935:
		return 2
	case freq >= 5955 && freq < 7125:
		return (freq - 5950) / 5
	case freq >= 5000 && freq < 5925:
		return (freq - 5000) / 5
	default:
		return 0
	}
}

func widthFromMHz(s string) labels.ChannelWidth {
	switch s {
	case "20":
		return labels.Width20MHz
	case "40":
		return labels.Width40MHz
	case "80":
		return labels.Width80MHz
	case "160":
		return labels.Width160MHz
	default:
		return labels.WidthUnknown
	}
}

// phyModeFromBitrate infers the PHY mode from the tx bitrate descriptor
// printed by `iw dev <if> link`, e.g. "866.7 MBit/s VHT-MCS 9 80MHz".
func phyModeFromBitrate(bitrate string, rate float64, band labels.ChannelBand) labels.PHYMode {
	switch {
	case bitrate == "":
		return labels.PHYModeNone
	case strings.Contains(bitrate, "HE-MCS") || strings.Contains(bitrate, "EHT-MCS"):
		return labels.PHYMode11ax
	case strings.Contains(bitrate, "VHT-MCS"):
		return labels.PHYMode11ac
	case strings.Contains(bitrate, "MCS"):
		return labels.PHYMode11n
	case band == labels.Band5GHz:
		return labels.PHYMode11a
	case rate > 11:
		return labels.PHYMode11g
	default:
		return labels.PHYMode11b
	}
}

// dBmToMilliwatts converts a transmit power level to whole milliwatts.
// Zero means iw did not report a level.
func dBmToMilliwatts(dbm float64) int {
	if dbm == 0 {
		return 0
	}
	return int(math.Round(math.Pow(10, dbm/10)))
}

func leadingFloat(s string) float64 {
	f, _ := strconv.ParseFloat(leadingNumRE.FindString(strings.TrimSpace(s)), 64)
	return f
}

func lines(out string) []string {
	var res []string
	for _, l := range strings.Split(out, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			res = append(res, l)
		}
	}
	return res
}
