// internal/status/snapshot.go
package status

// Snapshot represents exactly what the status writer is allowed to deliver.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health         uint16
	Peers          uint16
	Round          uint32
	SubmitBlock    uint16
	ProofOfStake   uint16
	Testnet        uint16
	SecondsInError uint16
}
