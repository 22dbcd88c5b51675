// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tamzrod/coin-netmon/internal/network"
)

const namespace = "netmon"

// Collector mirrors the monitor snapshot into prometheus gauges.
// It is a network.CapabilitySink and its Observe method is a network.Observer.
type Collector struct {
	difficulty  prometheus.Gauge
	hashrate    prometheus.Gauge
	round       prometheus.Gauge
	peers       prometheus.Gauge
	healthy     prometheus.Gauge
	posHybrid   prometheus.Gauge
	submitBlock prometheus.Gauge
}

// New creates the gauges for one coin and registers them on reg.
func New(reg prometheus.Registerer, coin string) (*Collector, error) {
	labels := prometheus.Labels{"coin": coin}

	gauge := func(subsystem, name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
	}

	c := &Collector{
		difficulty:  gauge("network", "difficulty", "Network difficulty; 0 when mining info is unavailable."),
		hashrate:    gauge("network", "hashrate", "Network hashrate estimate in hashes per second."),
		round:       gauge("network", "round", "Current block height + 1; -1 when unknown."),
		peers:       gauge("network", "peers", "Daemon peer connections."),
		healthy:     gauge("network", "healthy", "1 when the daemon connection is usable."),
		posHybrid:   gauge("capability", "pos_hybrid", "1 when the coin is a proof-of-stake hybrid."),
		submitBlock: gauge("capability", "submitblock", "submitblock support: -1 unknown, 0 no, 1 yes."),
	}
	c.submitBlock.Set(-1)
	c.round.Set(-1)

	for _, g := range []prometheus.Collector{
		c.difficulty, c.hashrate, c.round, c.peers, c.healthy, c.posHybrid, c.submitBlock,
	} {
		if err := reg.Register(g); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Observe updates the network gauges.
func (c *Collector) Observe(s network.Snapshot) {
	c.difficulty.Set(s.Difficulty)
	c.hashrate.Set(float64(s.Hashrate))
	c.round.Set(float64(s.Round))
	c.peers.Set(float64(s.Connections))
	c.healthy.Set(boolFloat(s.Healthy))
}

// SetCapabilities updates the capability gauges.
func (c *Collector) SetCapabilities(caps network.Capabilities) {
	c.posHybrid.Set(boolFloat(caps.ProofOfStakeHybrid))

	switch caps.SubmitBlock {
	case network.True:
		c.submitBlock.Set(1)
	case network.False:
		c.submitBlock.Set(0)
	default:
		c.submitBlock.Set(-1)
	}
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
