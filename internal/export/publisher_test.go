// internal/export/publisher_test.go
package export

import (
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tamzrod/coin-netmon/internal/network"
	"github.com/tamzrod/coin-netmon/internal/status"
)

type recordingWriter struct {
	got  []status.Snapshot
	fail error
}

func (r *recordingWriter) WriteStatus(s status.Snapshot) error {
	r.got = append(r.got, s)
	return r.fail
}

func TestToStatus(t *testing.T) {
	caps := network.Capabilities{ProofOfStakeHybrid: true, SubmitBlock: network.False}

	healthy := ToStatus(network.Snapshot{Round: 101, Connections: 70000, Testnet: true, Healthy: true}, caps, 0)
	assert.Equal(t, status.Snapshot{
		Health:       status.HealthOK,
		Peers:        65535,
		Round:        101,
		SubmitBlock:  status.CapNo,
		ProofOfStake: 1,
		Testnet:      1,
	}, healthy)

	noMining := ToStatus(network.Snapshot{Round: -1, Connections: -1}, network.Capabilities{}, 9)
	assert.Equal(t, status.HealthError, noMining.Health)
	assert.Zero(t, noMining.Round)
	assert.Zero(t, noMining.Peers)
	assert.Equal(t, status.CapUnknown, noMining.SubmitBlock)
	assert.EqualValues(t, 9, noMining.SecondsInError)

	degraded := ToStatus(network.Snapshot{Round: 5, Connections: 3, Errors: "warning"}, network.Capabilities{SubmitBlock: network.True}, 0)
	assert.Equal(t, status.HealthDegraded, degraded.Health)
	assert.Equal(t, status.CapYes, degraded.SubmitBlock)
}

func TestPublisher_InitialBlockOnCapabilities(t *testing.T) {
	w := &recordingWriter{}
	p := NewPublisher(w, clock.NewMock(), nil)

	p.SetCapabilities(network.Capabilities{SubmitBlock: network.True})

	require.Len(t, w.got, 1)
	assert.Equal(t, status.HealthUnknown, w.got[0].Health)
	assert.Equal(t, status.CapYes, w.got[0].SubmitBlock)
}

func TestPublisher_SecondsInError(t *testing.T) {
	mock := clock.NewMock()
	w := &recordingWriter{}
	p := NewPublisher(w, mock, nil)

	p.Observe(network.Snapshot{Round: 10, Healthy: true})
	p.Observe(network.Snapshot{Round: -1})
	mock.Add(30 * time.Second)
	p.Observe(network.Snapshot{Round: -1})
	p.Observe(network.Snapshot{Round: 11, Healthy: true})

	require.Len(t, w.got, 4)
	assert.Zero(t, w.got[0].SecondsInError)
	assert.Zero(t, w.got[1].SecondsInError)
	assert.EqualValues(t, 30, w.got[2].SecondsInError)
	assert.Zero(t, w.got[3].SecondsInError)
	assert.Equal(t, status.HealthOK, w.got[3].Health)
}

func TestPublisher_WriteFailureIsLoggedOnly(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	w := &recordingWriter{fail: errors.New("endpoint down")}
	p := NewPublisher(w, clock.NewMock(), zap.New(core))

	p.Observe(network.Snapshot{Round: 10, Healthy: true})

	assert.Equal(t, 1, logs.FilterMessage("status export failed").Len())
}
