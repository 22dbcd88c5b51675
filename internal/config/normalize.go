// internal/config/normalize.go
package config

import (
	"strings"

	"github.com/tamzrod/coin-netmon/internal/algorithm"
)

// Defaults applied by Normalize.
const (
	DefaultDaemonTimeoutMs = 5000
	DefaultIntervalMs      = 10000
	DefaultExportTimeoutMs = 1000
	DefaultLogLevel        = "info"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	n := &cfg.Netmon

	n.Coin.Symbol = strings.ToUpper(n.Coin.Symbol)
	if len(n.Coin.Symbol) > 16 {
		n.Coin.Symbol = n.Coin.Symbol[:16]
	}
	if n.Coin.Multiplier == 0 {
		if m, ok := algorithm.Multiplier(n.Coin.Algorithm); ok {
			n.Coin.Multiplier = m
		}
	}

	if n.Daemon.TimeoutMs == 0 {
		n.Daemon.TimeoutMs = DefaultDaemonTimeoutMs
	}
	if n.Refresh.IntervalMs == 0 {
		n.Refresh.IntervalMs = DefaultIntervalMs
	}

	n.Log.Level = strings.ToLower(n.Log.Level)
	if n.Log.Level == "" {
		n.Log.Level = DefaultLogLevel
	}

	if n.StatusExport != nil && n.StatusExport.TimeoutMs == 0 {
		n.StatusExport.TimeoutMs = DefaultExportTimeoutMs
	}
}
