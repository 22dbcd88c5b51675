// internal/network/status.go
package network

import (
	"fmt"

	"go.uber.org/zap"
)

// BlockDifficulty is the network difficulty scaled by the algorithm multiplier.
func (m *Monitor) BlockDifficulty() float64 {
	return m.Snapshot().Difficulty * m.coin.Multiplier
}

// StatusLine renders the snapshot as one human-readable line.
func (m *Monitor) StatusLine() string {
	s := m.Snapshot()

	return fmt.Sprintf(
		"symbol: %s algorithm: %s version: %s protocol: %d wallet: %d "+
			"network difficulty: %.8f block difficulty: %.2f network hashrate: %s "+
			"network: %s peers: %d blocks: %d errors: %s",
		m.coin.Symbol,
		m.coin.Algorithm,
		s.CoinVersion,
		s.ProtocolVersion,
		s.WalletVersion,
		s.Difficulty,
		s.Difficulty*m.coin.Multiplier,
		m.format(s.Hashrate),
		networkName(s.Testnet),
		s.Connections,
		s.Blocks(),
		errorsText(s.Errors),
	)
}

// StatusFields is StatusLine as structured log fields.
func (m *Monitor) StatusFields() []zap.Field {
	s := m.Snapshot()

	return []zap.Field{
		zap.String("symbol", m.coin.Symbol),
		zap.String("algorithm", m.coin.Algorithm),
		zap.String("version", s.CoinVersion),
		zap.Int("protocol", s.ProtocolVersion),
		zap.Int("wallet", s.WalletVersion),
		zap.Float64("network_difficulty", s.Difficulty),
		zap.Float64("block_difficulty", s.Difficulty*m.coin.Multiplier),
		zap.Uint64("hashrate", s.Hashrate),
		zap.String("hashrate_readable", m.format(s.Hashrate)),
		zap.String("network", networkName(s.Testnet)),
		zap.Int64("peers", s.Connections),
		zap.Int64("blocks", s.Blocks()),
		zap.String("errors", errorsText(s.Errors)),
		zap.Bool("healthy", s.Healthy),
	}
}

func networkName(testnet bool) string {
	if testnet {
		return "testnet"
	}
	return "mainnet"
}

func errorsText(e string) string {
	if e == "" {
		return "none"
	}
	return e
}
