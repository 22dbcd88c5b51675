// internal/export/publisher.go
package export

import (
	"math"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/tamzrod/coin-netmon/internal/network"
	"github.com/tamzrod/coin-netmon/internal/status"
)

// Publisher turns monitor output into status blocks.
// It is a network.CapabilitySink and its Observe method is a network.Observer.
// Write failures are logged, never returned: export must not disturb the monitor.
type Publisher struct {
	w     StatusWriter
	clock clock.Clock
	log   *zap.Logger

	mu         sync.Mutex
	caps       network.Capabilities
	errorSince time.Time // zero while healthy
}

// NewPublisher wraps a status writer.
func NewPublisher(w StatusWriter, clk clock.Clock, log *zap.Logger) *Publisher {
	if clk == nil {
		clk = clock.New()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Publisher{w: w, clock: clk, log: log.Named("export")}
}

// SetCapabilities records the capabilities and asserts the initial
// HealthUnknown block so readers see the coin before the first refresh.
func (p *Publisher) SetCapabilities(c network.Capabilities) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.caps = c
	s := ToStatus(network.Snapshot{Round: -1}, c, 0)
	s.Health = status.HealthUnknown
	p.write(s)
}

// Observe publishes a refreshed snapshot.
func (p *Publisher) Observe(s network.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.clock.Now()

	var secs uint16
	if s.Healthy {
		p.errorSince = time.Time{}
	} else {
		if p.errorSince.IsZero() {
			p.errorSince = now
		}
		secs = clampU16(int64(now.Sub(p.errorSince) / time.Second))
	}

	p.write(ToStatus(s, p.caps, secs))
}

func (p *Publisher) write(s status.Snapshot) {
	if err := p.w.WriteStatus(s); err != nil {
		p.log.Warn("status export failed", zap.Error(err))
	}
}

// ToStatus maps a network snapshot onto the register-level status snapshot.
func ToStatus(s network.Snapshot, caps network.Capabilities, secondsInError uint16) status.Snapshot {
	out := status.Snapshot{
		Peers:          clampU16(s.Connections),
		SubmitBlock:    capCode(caps.SubmitBlock),
		ProofOfStake:   boolU16(caps.ProofOfStakeHybrid),
		Testnet:        boolU16(s.Testnet),
		SecondsInError: secondsInError,
	}

	switch {
	case s.Round <= 0:
		out.Round = 0
	case s.Round > math.MaxUint32:
		out.Round = math.MaxUint32
	default:
		out.Round = uint32(s.Round)
	}

	switch {
	case s.Healthy:
		out.Health = status.HealthOK
	case s.Round < 0:
		out.Health = status.HealthError
	default:
		out.Health = status.HealthDegraded
	}

	return out
}

func capCode(t network.Tristate) uint16 {
	switch t {
	case network.True:
		return status.CapYes
	case network.False:
		return status.CapNo
	default:
		return status.CapUnknown
	}
}

func boolU16(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

func clampU16(v int64) uint16 {
	switch {
	case v < 0:
		return 0
	case v > math.MaxUint16:
		return math.MaxUint16
	default:
		return uint16(v)
	}
}
