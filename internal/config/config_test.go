package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	require := require.New(t)

	cfg := Default()
	require.Equal("USD", cfg.Engine.DefaultCurrency)
	require.True(cfg.Engine.SeasonalPricing)
	require.Equal("none", cfg.Engine.DefaultWhitelisting)
	require.Equal(":8080", cfg.Server.Addr)
}

func TestLoadAppliesDefaultsForOmittedFields(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(os.WriteFile(path, []byte(`{"server":{"addr":":9090"}}`), 0o644))

	cfg, err := Load(path)
	require.NoError(err)
	require.Equal(":9090", cfg.Server.Addr)
	// Fields the file omits keep their defaults
	require.Equal("USD", cfg.Engine.DefaultCurrency)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestSetAndGet(t *testing.T) {
	require := require.New(t)

	original := Get()
	defer Set(original)

	cfg := Default()
	cfg.Server.Addr = ":7000"
	Set(cfg)
	require.Equal(":7000", Get().Server.Addr)
}
