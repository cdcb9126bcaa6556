// Package network defines the address-version configuration of the named
// networks the codec can target. A Network value is immutable once
// constructed and is shared read-only by every codec touching addresses.
package network

import (
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/nanohq/nano-engine/pkg/collection"
)

// Network carries the version bytes used to build and validate addresses on
// one named network.
type Network struct {
	Name         string `yaml:"name"`
	P2PKHVersion byte   `yaml:"p2pkhVersion"`
	P2SHVersion  byte   `yaml:"p2shVersion"`
}

var builtin = []*Network{
	{Name: "mainnet", P2PKHVersion: 0x28, P2SHVersion: 0x64},
	{Name: "testnet", P2PKHVersion: 0x49, P2SHVersion: 0x87},
	{Name: "privatenet", P2PKHVersion: 0x49, P2SHVersion: 0x87},
}

// Mainnet returns the mainnet configuration.
func Mainnet() *Network {
	return builtin[0]
}

// Testnet returns the testnet configuration.
func Testnet() *Network {
	return builtin[1]
}

// ByName returns the builtin network with the given name.
func ByName(name string) (*Network, error) {
	result := collection.Find(builtin, func(n *Network) bool { return n.Name == name })
	if result == nil {
		return nil, fmt.Errorf("unknown network %q", name)
	}
	return result, nil
}

// FromYAML parses a custom network definition.
func FromYAML(data []byte) (*Network, error) {
	result := &Network{}
	if err := yaml.Unmarshal(data, result); err != nil {
		return nil, err
	}
	if result.Name == "" {
		return nil, fmt.Errorf("network definition is missing a name")
	}
	return result, nil
}

// ValidVersion returns true if b is one of the network's address version
// bytes.
func (n *Network) ValidVersion(b byte) bool {
	return b == n.P2PKHVersion || b == n.P2SHVersion
}
