package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscalia-dev/spedparse/internal/sped"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "2024-01-01", cfg.FallbackDate)
	assert.Equal(t, sped.DefaultBatchSize, cfg.BatchSize)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spedparse.yaml")

	cfg := &Config{FallbackDate: "2023-06-15", BatchSize: 1000}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spedparse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fallback_date: [\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	cfg := &Config{FallbackDate: "2023-06-15", BatchSize: 1000}
	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC), opts.FallbackDate)
	assert.Equal(t, 1000, opts.BatchSize)
}

func TestOptionsDefaultsWhenUnset(t *testing.T) {
	opts, err := (&Config{}).Options()
	require.NoError(t, err)
	assert.Equal(t, sped.DefaultOptions().FallbackDate, opts.FallbackDate)
	assert.Equal(t, sped.DefaultOptions().BatchSize, opts.BatchSize)
}

func TestOptionsBadDate(t *testing.T) {
	_, err := (&Config{FallbackDate: "15/06/2023"}).Options()
	assert.Error(t, err)
}
