// Package config provides request settings for the Cardano API client.
//
// Settings pairs a network endpoint with a set of optional query parameters
// (page size, page index, sort order and a from/to range). Settings are plain
// values: every builder method returns a modified copy, and nothing here
// performs I/O.
//
// # Basic Settings
//
// NewSettings targets Cardano mainnet with no query parameters:
//
//	s := config.NewSettings()
//	s.CurrentNetwork() // "https://cardano-mainnet.blockfrost.io/api/v0"
//
// # Network Selection
//
// Two predefined endpoints are available:
//
//	config.CardanoMainnetNetwork - used by NewSettings and UseMainnet
//	config.CardanoTestnetNetwork - used by UseTestnet
//
// Switching is last-write-wins:
//
//	s := config.NewSettings().UseTestnet()
//
// Any other endpoint can be set in place. It is not validated:
//
//	s.SetNetwork("http://localhost:3000/api/v0")
//
// # Query Parameters
//
// QueryParameters holds five independent optional fields. Each has a Set and
// an Unset method returning the receiver, and an accessor reporting presence:
//
//	s = s.Configure(func(q *config.QueryParameters) {
//		q.SetCount(100).SetPage(2).SetOrder(config.Descending)
//	})
//
//	count, ok := s.QueryParameters().Count() // 100, true
//
// The same parameters can be built in a single call:
//
//	q := config.NewQueryParameters(
//		config.WithCount(100),
//		config.WithPage(2),
//		config.WithOrder(config.Descending),
//	)
//
// # Query Order
//
// QueryOrder renders as "asc" (Ascending, the zero value) or "desc"
// (Descending). It implements pflag.Value and encoding.TextUnmarshaler so it
// can be read from flags and config files.
//
// # Request URLs
//
// RequestURL joins the endpoint with an API path and the encoded parameters:
//
//	u, err := s.RequestURL("blocks/latest/txs")
//	// https://cardano-testnet.blockfrost.io/api/v0/blocks/latest/txs?count=100&order=desc&page=2
//
// # Loading Configuration
//
// Load reads a Config from a YAML file, CARDANO_* environment variables and
// explicitly set flags (highest priority):
//
//	network: testnet
//	project_id: testnetXXXXXXXX
//	query:
//	  count: 50
//	  order: desc
//	timeouts:
//	  request: 10s
//
// Call Validate to apply defaults and Settings to build request Settings:
//
//	cfg, err := config.Load("cardano.yaml", nil)
//	if err != nil {
//		return err
//	}
//	if err := cfg.Validate(); err != nil {
//		return err
//	}
//	settings, err := cfg.Settings()
//
// # Thread Safety
//
// Settings and QueryParameters are not safe for concurrent mutation. Pass
// copies between goroutines.
package config
