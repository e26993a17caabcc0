package julesconfig_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/juleskit/julesconfig"
)

func TestWatch_MissingFile(t *testing.T) {
	_, err := julesconfig.Watch(context.Background(), filepath.Join(t.TempDir(), "config.yaml"))
	assert.Error(t, err)
}

func TestWatch_ReloadOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "api_key: first-key")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := julesconfig.Watch(ctx, path)
	require.NoError(t, err)

	// Give the watcher a moment to attach before rotating the key.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("api_key: rotated-key"), 0o600))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg, ok := <-ch:
			require.True(t, ok, "channel closed before reload arrived")
			if cfg.APIKey == "rotated-key" {
				return
			}
			// Duplicate events may deliver the old content first.
		case <-deadline:
			t.Fatal("timed out waiting for config reload")
		}
	}
}

func TestWatch_SkipsMalformedWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "api_key: first-key")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := julesconfig.Watch(ctx, path)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("api_key: [unclosed"), 0o600))
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("api_key: fixed-key"), 0o600))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg, ok := <-ch:
			require.True(t, ok)
			// The malformed intermediate state never comes through.
			assert.NotEqual(t, "[unclosed", cfg.APIKey)
			if cfg.APIKey == "fixed-key" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for corrected config")
		}
	}
}

func TestWatch_ContextCancelClosesChannel(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "api_key: key")

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := julesconfig.Watch(ctx, path)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should close after cancellation")
	case <-time.After(5 * time.Second):
		t.Fatal("channel did not close after cancellation")
	}
}
