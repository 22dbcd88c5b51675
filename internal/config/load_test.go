// internal/config/load_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
netmon:
  coin:
    name: Litecoin
    symbol: ltc
    algorithm: scrypt
  daemon:
    url: http://127.0.0.1:9332
    user: rpc
    password: secret
  refresh:
    interval_ms: 15000
  metrics:
    listen: ":9109"
  status_export:
    endpoint: 127.0.0.1:502
    unit_id: 3
    base_slot: 1
`

func TestLoad_ValidateNormalize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netmon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, Validate(cfg))
	Normalize(cfg)

	n := cfg.Netmon
	assert.Equal(t, "LTC", n.Coin.Symbol)
	assert.Equal(t, 65536.0, n.Coin.Multiplier)
	assert.Equal(t, "secret", n.Daemon.Password)
	assert.Equal(t, DefaultDaemonTimeoutMs, n.Daemon.TimeoutMs)
	assert.Equal(t, 15000, n.Refresh.IntervalMs)
	assert.Equal(t, DefaultLogLevel, n.Log.Level)
	assert.Equal(t, ":9109", n.Metrics.Listen)

	require.NotNil(t, n.StatusExport)
	assert.EqualValues(t, 3, n.StatusExport.UnitID)
	assert.EqualValues(t, 1, n.StatusExport.BaseSlot)
	assert.Equal(t, DefaultExportTimeoutMs, n.StatusExport.TimeoutMs)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("netmon:\n  coin:\n    nmae: typo\n"))
	require.Error(t, err)
}

func TestNormalize_KeepsExplicitMultiplier(t *testing.T) {
	cfg := valid()
	cfg.Netmon.Coin.Multiplier = 3
	cfg.Netmon.Log.Level = "DEBUG"
	Normalize(cfg)

	assert.Equal(t, 3.0, cfg.Netmon.Coin.Multiplier)
	assert.Equal(t, "debug", cfg.Netmon.Log.Level)
	assert.Equal(t, DefaultIntervalMs, cfg.Netmon.Refresh.IntervalMs)
	assert.Nil(t, cfg.Netmon.StatusExport)
}
