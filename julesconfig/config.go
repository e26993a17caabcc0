// Package julesconfig loads client configuration for the Jules API from
// config files and the environment.
//
// Configuration is discovered from ~/.config/jules (config.yaml,
// config.toml, or config.json), with environment variables taking
// precedence:
//
//	cfg, err := julesconfig.Discover()
//	if err != nil {
//	    cfg = julesconfig.FromEnv()
//	}
//	client := jules.NewClient(cfg.APIKey, cfg.ClientOptions()...)
//
// Watch re-loads the config file when it changes on disk, so a rotated API
// key is picked up without a restart.
package julesconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/juleskit/jules"
)

// Config holds client configuration for the Jules API.
// Zero values use sensible defaults where noted.
type Config struct {
	// APIKey authenticates every request. Required.
	// From jules.google.com/settings.
	APIKey string `json:"api_key" yaml:"api_key" toml:"api_key"`

	// BaseURL overrides the API endpoint.
	// Default: the production endpoint.
	BaseURL string `json:"base_url" yaml:"base_url" toml:"base_url"`

	// Timeout is the per-request HTTP timeout, written in Go duration
	// syntax in config files (e.g. "30s", "2m").
	// 0 uses the default (30 seconds).
	Timeout Duration `json:"timeout" yaml:"timeout" toml:"timeout"`

	// UserAgent is sent as the User-Agent header.
	// Optional.
	UserAgent string `json:"user_agent" yaml:"user_agent" toml:"user_agent"`
}

// Duration is a time.Duration that unmarshals from Go duration syntax
// ("30s", "2m") in YAML, TOML, and JSON config files.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler, which yaml.v3 and
// BurntSushi/toml both honor.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler; yaml.v3 does not consult
// TextUnmarshaler on its own.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// UnmarshalJSON accepts both "30s" strings and integer nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v := v.(type) {
	case string:
		return d.UnmarshalText([]byte(v))
	case float64:
		*d = Duration(time.Duration(v))
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", data)
	}
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// DefaultConfig returns a Config with sensible defaults.
// APIKey must still be set before use.
func DefaultConfig() Config {
	return Config{
		BaseURL: jules.DefaultBaseURL,
		Timeout: Duration(jules.DefaultTimeout),
	}
}

// LoadFromEnv populates config fields from environment variables.
// Environment variables use the JULES_ prefix and take precedence over
// existing values.
//
// Supported variables:
//   - JULES_API_KEY: API key
//   - JULES_BASE_URL: API endpoint
//   - JULES_TIMEOUT: request timeout duration (e.g. "30s")
//   - JULES_USER_AGENT: User-Agent header
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("JULES_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("JULES_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("JULES_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = Duration(d)
		}
	}
	if v := os.Getenv("JULES_USER_AGENT"); v != "" {
		c.UserAgent = v
	}
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.LoadFromEnv()
	return cfg
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %v", c.Timeout)
	}
	return nil
}

// ClientOptions converts the config into jules client options.
func (c Config) ClientOptions() []jules.Option {
	opts := make([]jules.Option, 0, 3)
	if c.BaseURL != "" {
		opts = append(opts, jules.WithBaseURL(c.BaseURL))
	}
	if c.Timeout > 0 {
		opts = append(opts, jules.WithTimeout(c.Timeout.Std()))
	}
	if c.UserAgent != "" {
		opts = append(opts, jules.WithUserAgent(c.UserAgent))
	}
	return opts
}

// Load reads a config file, dispatching on extension: .yaml/.yml, .toml,
// or .json. Fields absent from the file keep their defaults; environment
// variables are not applied (use LoadFromEnv for that).
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse yaml config %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse toml config %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse json config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format: %s", path)
	}

	return cfg, nil
}

// DefaultConfigDir returns the default config directory,
// ~/.config/jules on Unix-like systems.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "jules")
}

// candidateNames are probed, in order, by Discover.
var candidateNames = []string{"config.yaml", "config.yml", "config.toml", "config.json"}

// Discover loads config from the first config file found in the default
// config directory, then applies environment overrides. If no file exists,
// the result is environment-plus-defaults and the error is nil; a file
// that exists but fails to parse is an error.
func Discover() (Config, error) {
	return DiscoverIn(DefaultConfigDir())
}

// DiscoverIn is Discover rooted at a specific directory.
func DiscoverIn(dir string) (Config, error) {
	cfg := DefaultConfig()
	if dir != "" {
		for _, name := range candidateNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			loaded, err := Load(path)
			if err != nil {
				return cfg, err
			}
			cfg = loaded
			break
		}
	}
	cfg.LoadFromEnv()
	return cfg, nil
}
