package config

const (
	// CardanoMainnetNetwork is the Blockfrost API endpoint for Cardano mainnet.
	CardanoMainnetNetwork = "https://cardano-mainnet.blockfrost.io/api/v0"
	// CardanoTestnetNetwork is the Blockfrost API endpoint for Cardano testnet.
	CardanoTestnetNetwork = "https://cardano-testnet.blockfrost.io/api/v0"
)

// Settings holds the network endpoint requests are directed to and the
// query parameters appended to them. Settings has value semantics: copies
// do not share parameter state.
//
// The zero value is usable and targets mainnet.
type Settings struct {
	networkEndpoint string
	queryParameters QueryParameters
}

// NewSettings returns Settings pointed at mainnet with no query parameters set.
func NewSettings() Settings {
	return Settings{
		networkEndpoint: CardanoMainnetNetwork,
	}
}

// UseMainnet returns a copy of s targeting CardanoMainnetNetwork.
func (s Settings) UseMainnet() Settings {
	s.networkEndpoint = CardanoMainnetNetwork
	return s
}

// UseTestnet returns a copy of s targeting CardanoTestnetNetwork.
func (s Settings) UseTestnet() Settings {
	s.networkEndpoint = CardanoTestnetNetwork
	return s
}

// SetNetwork overwrites the endpoint with network. The value is not
// validated; malformed endpoints surface in RequestURL. An empty network
// makes CurrentNetwork report CardanoMainnetNetwork.
func (s *Settings) SetNetwork(network string) {
	s.networkEndpoint = network
}

// CurrentNetwork returns the endpoint requests are sent to.
func (s Settings) CurrentNetwork() string {
	if s.networkEndpoint == "" {
		return CardanoMainnetNetwork
	}
	return s.networkEndpoint
}

// QueryParameters returns a copy of the configured query parameters.
// Use Configure to change them.
func (s Settings) QueryParameters() QueryParameters {
	return s.queryParameters
}

// Configure calls fn once with the embedded query parameters and returns the
// modified Settings, so several parameters can be edited in one expression:
//
//	s := config.NewSettings().UseTestnet().Configure(func(q *config.QueryParameters) {
//		q.SetCount(10).SetOrder(config.Descending)
//	})
func (s Settings) Configure(fn func(*QueryParameters)) Settings {
	if fn != nil {
		fn(&s.queryParameters)
	}
	return s
}
