// Package config defines the Cardano API client settings: the network
// endpoint, the optional query parameters attached to requests, and the
// file/env/flag configuration those settings are built from.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Config is the external configuration of the SDK, as read from a YAML file,
// CARDANO_* environment variables or command line flags (see Load).
// Use Validate to fill implicit defaults and Settings to build request settings.
type Config struct {
	// Network is either a predefined network name ("mainnet", "testnet") or
	// a custom endpoint URL. Default: mainnet.
	Network string `json:"network" yaml:"network" mapstructure:"network"`
	// ProjectID is the Blockfrost project key sent with requests (optional
	// for URL building).
	ProjectID string `json:"project_id" yaml:"project_id" mapstructure:"project_id"`
	// Debug enables verbose logging.
	Debug bool `json:"debug" yaml:"debug" mapstructure:"debug"`
	// Query holds the initial query parameters. Nil fields are unset.
	Query QueryConfig `json:"query" yaml:"query" mapstructure:"query"`
	// Timeouts configures request deadlines. See Timeouts.WithDefaults for defaults.
	Timeouts Timeouts `json:"timeouts" yaml:"timeouts" mapstructure:"timeouts"`
}

// ErrQueryOutOfRange is returned when a configured count or page does not fit
// the range of the corresponding query parameter.
var ErrQueryOutOfRange = errors.New("query parameter out of range")

// QueryConfig is the serialized form of QueryParameters. Nil fields are unset;
// a non-nil empty From or To is kept as an explicitly empty bound.
//
// Count and Page are decoded as wide signed integers so that negative or
// oversized values are rejected by Validate instead of wrapping around.
type QueryConfig struct {
	Count *int64  `json:"count,omitempty" yaml:"count,omitempty" mapstructure:"count"`
	Page  *int64  `json:"page,omitempty" yaml:"page,omitempty" mapstructure:"page"`
	Order string  `json:"order,omitempty" yaml:"order,omitempty" mapstructure:"order"`
	From  *string `json:"from,omitempty" yaml:"from,omitempty" mapstructure:"from"`
	To    *string `json:"to,omitempty" yaml:"to,omitempty" mapstructure:"to"`
}

// Timeouts controls request deadlines. They are not used when building
// settings or URLs; they are carried for the HTTP layer that sends requests.
// Zero values will be replaced by defaults in WithDefaults.
type Timeouts struct {
	Request time.Duration `json:"request" yaml:"request" mapstructure:"request"` // single HTTP request
}

// Validate applies implicit defaults (Network defaults to mainnet) and
// checks that Query.Order, when given, is a known order and that Query.Count
// and Query.Page are within range (0-255 and non-negative).
func (c *Config) Validate() error {
	if c.Network == "" {
		c.Network = Mainnet.Name
	}

	if c.Query.Order != "" {
		if _, err := ParseQueryOrder(c.Query.Order); err != nil {
			return fmt.Errorf("query order: %w", err)
		}
	}

	return c.Query.checkRange()
}

func (q QueryConfig) checkRange() error {
	if q.Count != nil && (*q.Count < 0 || *q.Count > math.MaxUint8) {
		return fmt.Errorf("%w: count %d not in [0, %d]", ErrQueryOutOfRange, *q.Count, math.MaxUint8)
	}
	if q.Page != nil && *q.Page < 0 {
		return fmt.Errorf("%w: page %d is negative", ErrQueryOutOfRange, *q.Page)
	}
	return nil
}

// WithDefaults returns a copy of t with zero values replaced by defaults:
//
//	Request: 30s
func (t Timeouts) WithDefaults() Timeouts {
	tt := t
	if tt.Request == 0 {
		tt.Request = 30 * time.Second
	}
	return tt
}

// Settings builds request Settings from the configuration. Network names
// resolve to their predefined endpoint; other values are used verbatim.
func (c *Config) Settings() (Settings, error) {
	settings := NewSettings()
	if c.Network != "" {
		settings.SetNetwork(ResolveEndpoint(c.Network))
	}

	if err := c.Query.checkRange(); err != nil {
		return Settings{}, err
	}

	var (
		order    QueryOrder
		hasOrder bool
	)
	if c.Query.Order != "" {
		var err error
		if order, err = ParseQueryOrder(c.Query.Order); err != nil {
			return Settings{}, fmt.Errorf("query order: %w", err)
		}
		hasOrder = true
	}

	return settings.Configure(func(q *QueryParameters) {
		if c.Query.Count != nil {
			q.SetCount(uint8(*c.Query.Count))
		}
		if c.Query.Page != nil {
			q.SetPage(uint64(*c.Query.Page))
		}
		if hasOrder {
			q.SetOrder(order)
		}
		if c.Query.From != nil {
			q.SetFrom(*c.Query.From)
		}
		if c.Query.To != nil {
			q.SetTo(*c.Query.To)
		}
	}), nil
}
