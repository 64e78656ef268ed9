package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EnvPrefix prefixes every environment variable read by Load,
// e.g. CARDANO_NETWORK or CARDANO_QUERY_COUNT.
const EnvPrefix = "CARDANO"

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"network":         "network",
	"project-id":      "project_id",
	"debug":           "debug",
	"count":           "query.count",
	"page":            "query.page",
	"order":           "query.order",
	"from":            "query.from",
	"to":              "query.to",
	"request-timeout": "timeouts.request",
}

// Load reads the configuration from, in increasing priority: the YAML file at
// path (skipped when empty), CARDANO_* environment variables, and the flags
// in flags that were explicitly set. flags may be nil.
//
// Flags left at their defaults do not override lower-priority sources, so an
// unset --count flag leaves the count unset rather than zero.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
		zap.L().Debug("config file loaded", zap.String("path", path))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range flagKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %q: %w", key, err)
		}
	}

	if flags != nil {
		flags.Visit(func(f *pflag.Flag) {
			if key, ok := flagKeys[f.Name]; ok {
				v.Set(key, f.Value.String())
			}
		})
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
