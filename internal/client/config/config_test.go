package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:3030", cfg.ServerBaseURL)
	assert.Equal(t, ".daybox", cfg.DataDir)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"cmd", "-a", "https://daybox.example.com", "-d", "/tmp/daybox"}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NotPanics(t, func() { parseFlags(cfg) })

	assert.Equal(t, "https://daybox.example.com", cfg.ServerBaseURL)
	assert.Equal(t, "/tmp/daybox", cfg.DataDir)
}

func TestParseJSONOverlay(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(
		`{"server_base_url":"https://json.example.com","request_timeout":"30s"}`,
	), 0o600))

	os.Args = []string{"cmd", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NotPanics(t, func() { parseJSON(cfg) })

	assert.Equal(t, "https://json.example.com", cfg.ServerBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	// untouched field keeps its default
	assert.Equal(t, ".daybox", cfg.DataDir)
}
