// internal/network/types.go
package network

import (
	"context"

	"github.com/tamzrod/coin-netmon/internal/daemon"
)

// DaemonClient abstracts the coin daemon RPC calls the monitor needs.
// Timeouts and retries belong to the implementation, not the monitor.
type DaemonClient interface {
	GetInfo(ctx context.Context) (daemon.Info, error)
	GetMiningInfo(ctx context.Context) (daemon.MiningInfo, error)
	SubmitBlock(ctx context.Context, hex string) error
	MakeRawRequest(ctx context.Context, method string, params ...any) (string, error)
}

// Snapshot is the latest view of the daemon's network state.
// It is replaced as a whole on every refresh.
type Snapshot struct {
	// mininginfo group
	Difficulty float64
	Round      int64 // block height + 1, -1 when unknown
	Hashrate   uint64

	// getinfo group
	CoinVersion     string
	ProtocolVersion int
	WalletVersion   int
	Testnet         bool
	Connections     int64
	Errors          string

	// Healthy is true only if both groups were read and the daemon reports
	// non-negative peers and no errors.
	Healthy bool
}

// Blocks returns the current chain height, or -1 when unknown.
func (s Snapshot) Blocks() int64 {
	if s.Round < 0 {
		return -1
	}
	return s.Round - 1
}

// Tristate is a capability that may not have been classified.
type Tristate int8

const (
	Unknown Tristate = iota
	False
	True
)

func (t Tristate) String() string {
	switch t {
	case False:
		return "false"
	case True:
		return "true"
	default:
		return "unknown"
	}
}

// Bool reports the flag value and whether it is known.
func (t Tristate) Bool() (value, known bool) {
	return t == True, t != Unknown
}

// Capabilities are daemon behaviour variants detected once at startup.
type Capabilities struct {
	ProofOfStakeHybrid bool
	SubmitBlock        Tristate
}

// CapabilitySink receives the detected capabilities once, before the first
// refresh. Block-template, share and payout components implement it.
type CapabilitySink interface {
	SetCapabilities(c Capabilities)
}

// Coin is the externally configured identity of the monitored coin.
type Coin struct {
	Name      string
	Symbol    string
	Algorithm string

	// Multiplier converts network difficulty into block difficulty.
	Multiplier float64
}
