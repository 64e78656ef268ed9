package config

import "strings"

// Network names a Cardano deployment and its API endpoint.
type Network struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Mainnet is the predefined Network for Cardano mainnet.
var Mainnet = Network{
	Name: "mainnet",
	URL:  CardanoMainnetNetwork,
}

// Testnet is the predefined Network for Cardano testnet.
var Testnet = Network{
	Name: "testnet",
	URL:  CardanoTestnetNetwork,
}

// LookupNetwork returns the predefined Network called name (case-insensitive).
func LookupNetwork(name string) (Network, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Mainnet.Name:
		return Mainnet, true
	case Testnet.Name:
		return Testnet, true
	default:
		return Network{}, false
	}
}

// ResolveEndpoint maps a network name to its endpoint. Anything else is
// treated as a custom endpoint and returned unchanged.
func ResolveEndpoint(value string) string {
	if n, ok := LookupNetwork(value); ok {
		return n.URL
	}
	return value
}
