// internal/status/constants.go
package status

// Network Status Block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerBlock is the fixed number of holding registers per coin.
const SlotsPerBlock = 20

// ---- SLOT INDICES ----

// SlotHealthCode holds the daemon health state.
const SlotHealthCode = 0

// SlotPeers holds the peer count, clamped to 0..65535.
const SlotPeers = 1

// SlotRoundHi and SlotRoundLo hold the round as a big-endian uint32.
// Zero means unknown.
const SlotRoundHi = 2
const SlotRoundLo = 3

// SlotSubmitBlock holds the submitblock capability (CapUnknown/CapNo/CapYes).
const SlotSubmitBlock = 4

// SlotProofOfStake holds 1 for proof-of-stake hybrids.
const SlotProofOfStake = 5

// SlotTestnet holds 1 when the daemon runs on testnet.
const SlotTestnet = 6

// SlotSecondsInError holds the duration (in seconds) the daemon has been unhealthy.
const SlotSecondsInError = 7

// ---- RESERVED RANGE ----

// Slots 8–10 are reserved for future use.
const SlotReservedStart = 8
const SlotReservedEnd = 10

// ---- COIN SYMBOL ----

// SlotSymbolStart is the first slot used for the coin symbol.
// The symbol is always placed at the END of the status block.
const SlotSymbolStart = 11

// SlotSymbolSlots is the number of slots reserved for the symbol.
const SlotSymbolSlots = 8

// SlotSymbolEnd is the last slot used for the symbol (inclusive).
const SlotSymbolEnd = SlotSymbolStart + SlotSymbolSlots - 1

// ---- LIMITS ----

// SymbolMaxChars is the maximum number of ASCII characters stored for the symbol.
const SymbolMaxChars = 16

// ---- HEALTH CODES ----

// HealthUnknown represents the boot state, before the first refresh.
const HealthUnknown uint16 = 0

// HealthOK represents a healthy daemon.
const HealthOK uint16 = 1

// HealthError represents a daemon without usable mining info.
const HealthError uint16 = 2

// HealthDegraded represents mining info present but the daemon unhealthy
// (getinfo failed, no peers, or daemon-reported errors).
const HealthDegraded uint16 = 3

// ---- CAPABILITY CODES ----

const (
	CapUnknown uint16 = 0
	CapNo      uint16 = 1
	CapYes     uint16 = 2
)
