package wlan

import (
	"context"
	"slices"
)

// Association records one call to StubClient.Associate.
type Association struct {
	Interface string
	Network   Network
	Password  string
}

// StubClient is an in-memory Client. Calls are recorded so tests can assert
// on what the dispatcher asked for.
type StubClient struct {
	Names      []string
	Interfaces map[string]*Interface
	Networks   []Network

	NamesErr     error
	InterfaceErr error
	ScanErr      error
	AssociateErr error

	ScanCalls    int
	Associations []Association
}

var _ Client = (*StubClient)(nil)

// NewStubClient returns a stub serving a single interface and the given
// scan results.
func NewStubClient(iface *Interface, networks ...Network) *StubClient {
	s := &StubClient{Interfaces: map[string]*Interface{}, Networks: networks}
	if iface != nil {
		s.Names = []string{iface.Name}
		s.Interfaces[iface.Name] = iface
	}
	return s
}

func (s *StubClient) InterfaceNames(ctx context.Context) ([]string, error) {
	if s.NamesErr != nil {
		return nil, s.NamesErr
	}
	return slices.Clone(s.Names), nil
}

func (s *StubClient) Interface(ctx context.Context, name string) (*Interface, error) {
	if s.InterfaceErr != nil {
		return nil, s.InterfaceErr
	}
	if name == "" && len(s.Names) > 0 {
		name = s.Names[0]
	}
	iface, ok := s.Interfaces[name]
	if !ok {
		return nil, NewNotFoundError("current", "no interface named "+name)
	}
	return iface, nil
}

func (s *StubClient) Scan(ctx context.Context, iface, ssid string) ([]Network, error) {
	s.ScanCalls++
	if s.ScanErr != nil {
		return nil, s.ScanErr
	}
	return filterSSID(s.Networks, ssid), nil
}

func (s *StubClient) Associate(ctx context.Context, iface string, network Network, password string) error {
	s.Associations = append(s.Associations, Association{Interface: iface, Network: network, Password: password})
	return s.AssociateErr
}

func filterSSID(networks []Network, ssid string) []Network {
	if ssid == "" {
		return slices.Clone(networks)
	}
	var out []Network
	for _, n := range networks {
		if v, ok := n.SSID.Get(); ok && v == ssid {
			out = append(out, n)
		}
	}
	return out
}
