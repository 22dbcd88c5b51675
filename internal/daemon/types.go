// internal/daemon/types.go
package daemon

// Info is the subset of getinfo the pool reads.
type Info struct {
	Version         string
	ProtocolVersion int
	WalletVersion   int
	Testnet         bool
	Connections     int64
	Errors          string
}

// MiningInfo is the subset of getmininginfo the pool reads.
type MiningInfo struct {
	NetworkHashPerSec uint64
	Difficulty        float64
	Blocks            int64
}
