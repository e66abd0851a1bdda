package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix = "FIREWALL_"
	EnvConfig = EnvPrefix + "CONFIG"
)

// Load builds a Config. path falls back to FIREWALL_CONFIG; overrides are
// keyed by koanf tag and win over everything else.
func Load(path string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); nil != err {
			return nil, fmt.Errorf("unable to load %s: %w", path, err)
		}
	}

	// FIREWALL_FRAME_PERIOD -> frame_period
	provider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
	})
	if err := k.Load(provider, nil); nil != err {
		return nil, fmt.Errorf("unable to load environment: %w", err)
	}
	k.Delete("config")

	for key, value := range overrides {
		if err := k.Set(key, value); nil != err {
			return nil, fmt.Errorf("unable to set %s: %w", key, err)
		}
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); nil != err {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	if err := cfg.Validate(); nil != err {
		return nil, err
	}
	return cfg, nil
}
