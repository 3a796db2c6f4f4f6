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

	assert.Equal(t, ":3030", cfg.EndpointAddr)
	assert.Equal(t, 60*time.Minute, cfg.AccessTokenValidityDuration)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.NotEmpty(t, cfg.S3Bucket)
}

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"cmd", "-a", ":8080", "-d", "postgres://db/daybox", "-s", "k", "-t", "120"}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NotPanics(t, func() { parseFlags(cfg) })

	assert.Equal(t, ":8080", cfg.EndpointAddr)
	assert.Equal(t, "postgres://db/daybox", cfg.DatabaseDSN)
	assert.Equal(t, "k", cfg.SecretKey)
	assert.Equal(t, 120*time.Minute, cfg.AccessTokenValidityDuration)
}

func TestParseJSONOverlay(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(
		`{"endpoint_addr":":9090","access_token_validity_duration":"30m","s3_bucket":"media"}`,
	), 0o600))

	os.Args = []string{"cmd", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NotPanics(t, func() { parseJSON(cfg) })

	assert.Equal(t, ":9090", cfg.EndpointAddr)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, "media", cfg.S3Bucket)
	// untouched field keeps its default
	assert.Equal(t, "secretKey", cfg.SecretKey)
}
