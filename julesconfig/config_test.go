package julesconfig_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/juleskit/jules"
	"github.com/randalmurphal/juleskit/julesconfig"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := julesconfig.DefaultConfig()
	assert.Equal(t, jules.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, jules.DefaultTimeout, cfg.Timeout.Std())
	assert.Empty(t, cfg.APIKey)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
api_key: yaml-key
base_url: https://example.test/v1/
timeout: 45s
user_agent: myapp/2.0
`)

	cfg, err := julesconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml-key", cfg.APIKey)
	assert.Equal(t, "https://example.test/v1/", cfg.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Timeout.Std())
	assert.Equal(t, "myapp/2.0", cfg.UserAgent)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
api_key = "toml-key"
timeout = "2m"
`)

	cfg, err := julesconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "toml-key", cfg.APIKey)
	assert.Equal(t, 2*time.Minute, cfg.Timeout.Std())
	// Fields absent from the file keep their defaults.
	assert.Equal(t, jules.DefaultBaseURL, cfg.BaseURL)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{"api_key":"json-key","timeout":"90s"}`)

	cfg, err := julesconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json-key", cfg.APIKey)
	assert.Equal(t, 90*time.Second, cfg.Timeout.Std())
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.ini", "api_key=nope")

	_, err := julesconfig.Load(path)
	assert.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "api_key: [unclosed")

	_, err := julesconfig.Load(path)
	assert.Error(t, err)
}

func TestLoad_Missing(t *testing.T) {
	_, err := julesconfig.Load(filepath.Join(t.TempDir(), "config.yaml"))
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("JULES_API_KEY", "env-key")
	t.Setenv("JULES_BASE_URL", "https://env.test/")
	t.Setenv("JULES_TIMEOUT", "10s")
	t.Setenv("JULES_USER_AGENT", "env-agent")

	cfg := julesconfig.FromEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "https://env.test/", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout.Std())
	assert.Equal(t, "env-agent", cfg.UserAgent)
}

func TestLoadFromEnv_InvalidTimeoutIgnored(t *testing.T) {
	t.Setenv("JULES_TIMEOUT", "not-a-duration")

	cfg := julesconfig.FromEnv()
	assert.Equal(t, jules.DefaultTimeout, cfg.Timeout.Std())
}

func TestValidate(t *testing.T) {
	cfg := julesconfig.DefaultConfig()
	assert.Error(t, cfg.Validate(), "missing api_key must fail")

	cfg.APIKey = "key"
	assert.NoError(t, cfg.Validate())

	cfg.Timeout = julesconfig.Duration(-time.Second)
	assert.Error(t, cfg.Validate())
}

func TestDiscoverIn_PrefersYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", "api_key: from-yaml")
	writeFile(t, dir, "config.toml", `api_key = "from-toml"`)

	cfg, err := julesconfig.DiscoverIn(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-yaml", cfg.APIKey)
}

func TestDiscoverIn_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", "api_key: from-file")
	t.Setenv("JULES_API_KEY", "from-env")

	cfg, err := julesconfig.DiscoverIn(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)
}

func TestDiscoverIn_NoFile(t *testing.T) {
	t.Setenv("JULES_API_KEY", "env-only")

	cfg, err := julesconfig.DiscoverIn(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "env-only", cfg.APIKey)
	assert.Equal(t, jules.DefaultBaseURL, cfg.BaseURL)
}

func TestDiscoverIn_MalformedFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", "api_key: [unclosed")

	_, err := julesconfig.DiscoverIn(dir)
	assert.Error(t, err)
}

func TestClientOptions(t *testing.T) {
	cfg := julesconfig.Config{
		APIKey:    "key",
		BaseURL:   "https://example.test/",
		Timeout:   julesconfig.Duration(15 * time.Second),
		UserAgent: "ua",
	}
	assert.Len(t, cfg.ClientOptions(), 3)

	assert.Empty(t, julesconfig.Config{APIKey: "key"}.ClientOptions())
}

func TestDuration_JSONNumber(t *testing.T) {
	var d julesconfig.Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, d.Std())

	require.NoError(t, d.UnmarshalJSON([]byte(`"3h"`)))
	assert.Equal(t, 3*time.Hour, d.Std())

	assert.Error(t, d.UnmarshalJSON([]byte(`true`)))
	assert.Error(t, d.UnmarshalJSON([]byte(`"bogus"`)))
}
