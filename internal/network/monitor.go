// internal/network/monitor.go
package network

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/tamzrod/coin-netmon/internal/hashrate"
)

// Observer is called with every published snapshot.
type Observer func(Snapshot)

// Option configures a Monitor.
type Option func(*Monitor)

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Monitor) { m.log = l }
}

// WithClock sets the clock used for the refresh ticker and timestamps.
func WithClock(c clock.Clock) Option {
	return func(m *Monitor) { m.clock = c }
}

// WithFormatter sets the hashrate formatter used by the status line.
func WithFormatter(f func(uint64) string) Option {
	return func(m *Monitor) { m.format = f }
}

// WithCapabilitySink adds a receiver for the detected capabilities.
func WithCapabilitySink(s CapabilitySink) Option {
	return func(m *Monitor) { m.sinks = append(m.sinks, s) }
}

// WithObserver adds a callback run after every refresh.
func WithObserver(o Observer) Option {
	return func(m *Monitor) { m.observers = append(m.observers, o) }
}

// Monitor tracks the daemon's network state.
//
// Capabilities are detected once in New. Refresh may be called any number
// of times, from any goroutine; calls are serialized internally.
type Monitor struct {
	coin   Coin
	client DaemonClient

	log       *zap.Logger
	clock     clock.Clock
	format    func(uint64) string
	sinks     []CapabilitySink
	observers []Observer

	refreshMu sync.Mutex // one refresh at a time

	mu          sync.RWMutex
	snap        Snapshot
	caps        Capabilities
	refreshedAt time.Time
}

// New creates a monitor and initializes it: capability detection, one
// refresh, and a status log line. It fails only on missing collaborators;
// daemon trouble shows up in the snapshot instead.
func New(ctx context.Context, coin Coin, client DaemonClient, opts ...Option) (*Monitor, error) {
	if client == nil {
		return nil, errors.New("network: daemon client required")
	}
	if coin.Symbol == "" {
		return nil, errors.New("network: coin symbol required")
	}

	m := &Monitor{
		coin:   coin,
		client: client,
		snap:   Snapshot{Round: -1},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	if m.clock == nil {
		m.clock = clock.New()
	}
	if m.format == nil {
		m.format = hashrate.Readable
	}
	m.log = m.log.Named("network").With(zap.String("coin", coin.Name))

	m.init(ctx)
	return m, nil
}

// init must run before the first Refresh: capability consumers may start
// as soon as the flags are published.
func (m *Monitor) init(ctx context.Context) {
	caps := Capabilities{
		ProofOfStakeHybrid: DetectProofOfStake(ctx, m.client, m.log),
		SubmitBlock:        DetectSubmitBlock(ctx, m.client, m.log),
	}

	m.mu.Lock()
	m.caps = caps
	m.mu.Unlock()

	m.log.Info("daemon capabilities detected",
		zap.Bool("pos_hybrid", caps.ProofOfStakeHybrid),
		zap.Stringer("submitblock", caps.SubmitBlock),
	)

	for _, s := range m.sinks {
		s.SetCapabilities(caps)
	}

	m.Refresh(ctx)
	m.log.Info(m.StatusLine())
}

// Refresh re-reads getinfo and getmininginfo.
//
// The two groups fail independently. A getinfo failure keeps the previous
// identity fields (they rarely change) and marks the daemon unhealthy.
// A getmininginfo failure blanks hashrate, difficulty and round to their
// sentinels and marks the daemon unhealthy, so they are never stale.
// Refresh never returns an error.
func (m *Monitor) Refresh(ctx context.Context) {
	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	m.mu.RLock()
	next := m.snap
	m.mu.RUnlock()

	if info, err := m.client.GetInfo(ctx); err != nil {
		m.log.Error("can not read getinfo", zap.Error(err))
		next.Healthy = false
	} else {
		next.CoinVersion = info.Version
		next.ProtocolVersion = info.ProtocolVersion
		next.WalletVersion = info.WalletVersion
		next.Testnet = info.Testnet
		next.Connections = info.Connections
		next.Errors = info.Errors
		next.Healthy = next.Connections >= 0 && next.Errors == ""
	}

	// Always attempted, whatever getinfo did.
	if mi, err := m.client.GetMiningInfo(ctx); err != nil {
		m.log.Error("can not read getmininginfo, the coin may not support the request", zap.Error(err))
		next.Hashrate = 0
		next.Difficulty = 0
		next.Round = -1
		next.Healthy = false
	} else {
		next.Hashrate = mi.NetworkHashPerSec
		next.Difficulty = mi.Difficulty
		next.Round = mi.Blocks + 1
	}

	now := m.clock.Now()

	m.mu.Lock()
	m.snap = next
	m.refreshedAt = now
	m.mu.Unlock()

	for _, o := range m.observers {
		o(next)
	}
}

// Snapshot returns a copy of the current snapshot.
func (m *Monitor) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap
}

// Capabilities returns the detected capabilities.
func (m *Monitor) Capabilities() Capabilities {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.caps
}

// RefreshedAt returns when the snapshot was last replaced.
func (m *Monitor) RefreshedAt() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshedAt
}

// Coin returns the configured coin identity.
func (m *Monitor) Coin() Coin { return m.coin }
