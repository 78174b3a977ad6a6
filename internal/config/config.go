// Package config manages agroctl settings using koanf.
// Values are loaded with priority: environment variables (AGROCTL_*) >
// user config file > defaults. The user config is YAML at
// os.UserConfigDir()/agroctl/config.yml; a legacy JSON file at
// ~/.agroctl/config.json is read when the YAML file does not exist.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the prefix for environment variable overrides,
// e.g. AGROCTL_API_KEY, AGROCTL_BASE_URL.
const envPrefix = "AGROCTL_"

// tokenExpirySlack is how far in the future a cached token's expiry must be
// for the token to count as valid.
const tokenExpirySlack = 60 * time.Second

// Config holds every agroctl setting. It is loaded once per process and
// passed explicitly to whatever needs it.
type Config struct {
	// APIKey authenticates every request against the remote service.
	APIKey string `koanf:"api_key"`

	// OAuth client credentials and the cached token they produced.
	// agroctl stores these but does not run a token exchange itself.
	ClientID     string `koanf:"client_id"`
	ClientSecret string `koanf:"client_secret"`
	AccessToken  string `koanf:"access_token"`
	// TokenExpiry is the cached token's expiry as epoch milliseconds.
	TokenExpiry int64 `koanf:"token_expiry"`

	// BaseURL is the service root; the /v4/... paths are appended to it.
	BaseURL string `koanf:"base_url"`

	// Timeout bounds each HTTP round trip, in seconds. 0 disables it.
	Timeout int `koanf:"timeout"`
}

// Load reads configuration from defaults, the user config file, and the
// environment, in ascending priority.
func Load() (*Config, error) {
	k := koanf.New(".")

	for key, schema := range KnownKeys {
		if err := k.Set(key, schema.Default); err != nil {
			return nil, fmt.Errorf("setting default for %s: %w", key, err)
		}
	}

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKeyMapper), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// loadUserConfig merges the user config file if one exists.
// YAML is the current format; the legacy JSON path is still honored.
func loadUserConfig(k *koanf.Koanf) error {
	yamlPath, err := UserConfigPath()
	if err == nil && fileExists(yamlPath) {
		if err := k.Load(file.Provider(yamlPath), kyaml.Parser()); err != nil {
			return fmt.Errorf("loading %s: %w", yamlPath, err)
		}
		return nil
	}

	legacyPath, err := LegacyConfigPath()
	if err == nil && fileExists(legacyPath) {
		if err := k.Load(file.Provider(legacyPath), kjson.Parser()); err != nil {
			return fmt.Errorf("loading %s: %w", legacyPath, err)
		}
	}
	return nil
}

// envKeyMapper turns AGROCTL_API_KEY into api_key.
func envKeyMapper(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// IsConfigured reports whether an API key is set. Authenticated commands
// check this before issuing any network call.
func (c *Config) IsConfigured() bool {
	return c.APIKey != ""
}

// HasValidToken reports whether a cached access token exists and its expiry
// is more than 60 seconds in the future.
func (c *Config) HasValidToken() bool {
	return c.HasValidTokenAt(time.Now())
}

// HasValidTokenAt is HasValidToken evaluated against an explicit clock.
func (c *Config) HasValidTokenAt(now time.Time) bool {
	if c.AccessToken == "" || c.TokenExpiry == 0 {
		return false
	}
	expiry := time.UnixMilli(c.TokenExpiry)
	return expiry.After(now.Add(tokenExpirySlack))
}
