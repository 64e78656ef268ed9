// Package sdk exposes the high-level Cardano SDK entry point. It turns a
// validated configuration into request settings and keeps them, together
// with the project key and timeouts, for the API layer.
package sdk

import (
	"errors"
	"fmt"

	"github.com/singnet/cardano-sdk-go/pkg/config"
	"go.uber.org/zap"
)

// logLevel controls the global logger; Config.Debug lowers it to debug.
var logLevel = zap.NewAtomicLevelAt(zap.InfoLevel)

// init configures a default global zap logger for the SDK. Applications may
// replace it with zap.ReplaceGlobals(...) if they need custom logging.
func init() {
	c := zap.Config{
		Level:            logLevel,
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// Core is the SDK implementation. It owns the Settings built from the
// configuration; callers get copies.
type Core struct {
	cfg      *config.Config
	settings config.Settings
}

// NewSDK validates cfg, applies default timeouts and builds the request
// settings. cfg is updated in place with the applied defaults.
func NewSDK(cfg *config.Config) (*Core, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.Timeouts = cfg.Timeouts.WithDefaults()

	if cfg.Debug {
		logLevel.SetLevel(zap.DebugLevel)
	}

	settings, err := cfg.Settings()
	if err != nil {
		return nil, fmt.Errorf("build settings: %w", err)
	}

	zap.L().Debug("sdk initialized",
		zap.String("network", settings.CurrentNetwork()),
		zap.String("query", settings.QueryParameters().Encode()),
		zap.Duration("requestTimeout", cfg.Timeouts.Request),
	)

	return &Core{
		cfg:      cfg,
		settings: settings,
	}, nil
}

// Settings returns a copy of the current request settings.
func (c *Core) Settings() config.Settings {
	return c.settings
}

// Config returns the validated configuration the SDK was built from.
func (c *Core) Config() *config.Config {
	return c.cfg
}

// ProjectID returns the configured Blockfrost project key.
func (c *Core) ProjectID() string {
	return c.cfg.ProjectID
}

// SetNetwork switches subsequent requests to network, which may be a
// predefined network name or a custom endpoint.
func (c *Core) SetNetwork(network string) {
	endpoint := config.ResolveEndpoint(network)
	c.settings.SetNetwork(endpoint)
	zap.L().Debug("network changed", zap.String("network", endpoint))
}

// Configure applies fn to the query parameters used by subsequent requests.
func (c *Core) Configure(fn func(*config.QueryParameters)) {
	c.settings = c.settings.Configure(fn)
	zap.L().Debug("query parameters changed", zap.String("query", c.settings.QueryParameters().Encode()))
}

// RequestURL returns the full URL for an API path under the current settings.
func (c *Core) RequestURL(path string) (string, error) {
	u, err := c.settings.RequestURL(path)
	if err != nil {
		zap.L().Error("failed to build request url", zap.String("path", path), zap.Error(err))
		return "", err
	}
	return u, nil
}
