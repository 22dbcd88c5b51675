// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/multierr"

	"github.com/tamzrod/coin-netmon/internal/algorithm"
	"github.com/tamzrod/coin-netmon/internal/status"
)

var logLevels = map[string]struct{}{
	"": {}, "debug": {}, "info": {}, "warn": {}, "error": {},
}

// Validate checks configuration correctness.
// It performs declarative validation only and reports every problem found.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil")
	}

	n := cfg.Netmon
	var errs error

	// ------------------------------------------------------------
	// COIN
	// ------------------------------------------------------------

	if n.Coin.Name == "" {
		errs = multierr.Append(errs, errors.New("coin.name is required"))
	}
	if n.Coin.Symbol == "" {
		errs = multierr.Append(errs, errors.New("coin.symbol is required"))
	}
	for i := 0; i < len(n.Coin.Symbol); i++ {
		if n.Coin.Symbol[i] > 0x7F {
			errs = multierr.Append(errs, fmt.Errorf("coin.symbol %q must contain ASCII characters only", n.Coin.Symbol))
			break
		}
	}
	if n.Coin.Multiplier < 0 {
		errs = multierr.Append(errs, fmt.Errorf("coin.multiplier must be >= 0, got %v", n.Coin.Multiplier))
	}
	if n.Coin.Multiplier == 0 {
		if _, ok := algorithm.Multiplier(n.Coin.Algorithm); !ok {
			errs = multierr.Append(errs, fmt.Errorf(
				"coin.algorithm %q has no known multiplier; set coin.multiplier",
				n.Coin.Algorithm,
			))
		}
	}

	// ------------------------------------------------------------
	// DAEMON
	// ------------------------------------------------------------

	if n.Daemon.URL == "" {
		errs = multierr.Append(errs, errors.New("daemon.url is required"))
	} else if u, err := url.Parse(n.Daemon.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = multierr.Append(errs, fmt.Errorf("daemon.url %q must be an http(s) url", n.Daemon.URL))
	}
	if n.Daemon.TimeoutMs < 0 {
		errs = multierr.Append(errs, errors.New("daemon.timeout_ms must be >= 0"))
	}

	// ------------------------------------------------------------
	// REFRESH / LOG
	// ------------------------------------------------------------

	if n.Refresh.IntervalMs < 0 {
		errs = multierr.Append(errs, errors.New("refresh.interval_ms must be >= 0"))
	}
	if _, ok := logLevels[strings.ToLower(n.Log.Level)]; !ok {
		errs = multierr.Append(errs, fmt.Errorf("log.level %q is not one of debug|info|warn|error", n.Log.Level))
	}

	// ------------------------------------------------------------
	// STATUS EXPORT (OPT-IN)
	// ------------------------------------------------------------

	if se := n.StatusExport; se != nil {
		if se.Endpoint == "" {
			errs = multierr.Append(errs, errors.New("status_export.endpoint is required when status_export is set"))
		}
		if se.TimeoutMs < 0 {
			errs = multierr.Append(errs, errors.New("status_export.timeout_ms must be >= 0"))
		}
		// the whole block must fit the uint16 register address space
		if (uint32(se.BaseSlot)+1)*status.SlotsPerBlock-1 > 0xFFFF {
			errs = multierr.Append(errs, fmt.Errorf("status_export.base_slot %d is out of address range", se.BaseSlot))
		}
	}

	if errs != nil {
		return fmt.Errorf("config: %w", errs)
	}
	return nil
}
