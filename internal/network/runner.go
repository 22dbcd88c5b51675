// internal/network/runner.go
package network

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Run refreshes on every tick until ctx is done.
// One goroutine per monitor. No overlap. No retries.
func (m *Monitor) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		m.log.Error("refresh loop not started: interval must be > 0", zap.Duration("interval", interval))
		return
	}

	ticker := m.clock.Ticker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Refresh(ctx)
			m.log.Debug("network refreshed", m.StatusFields()...)
		}
	}
}
