// internal/status/encode.go
package status

// Encode converts a Snapshot into the live part of a status block.
// Symbol slots are left zero; see EncodeSymbol.
// Layout is protocol-locked.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerBlock)

	regs[SlotHealthCode] = s.Health
	regs[SlotPeers] = s.Peers
	regs[SlotRoundHi] = uint16(s.Round >> 16)
	regs[SlotRoundLo] = uint16(s.Round)
	regs[SlotSubmitBlock] = s.SubmitBlock
	regs[SlotProofOfStake] = s.ProofOfStake
	regs[SlotTestnet] = s.Testnet
	regs[SlotSecondsInError] = s.SecondsInError

	return regs
}

// EncodeBlock is Encode with the symbol filled in.
func EncodeBlock(s Snapshot, symbol string) []uint16 {
	regs := Encode(s)
	copy(regs[SlotSymbolStart:SlotSymbolEnd+1], EncodeSymbol(symbol))
	return regs
}

// EncodeSymbol packs up to SymbolMaxChars ASCII characters into
// SlotSymbolSlots registers, two bytes per register, big-endian.
// Non-ASCII bytes are replaced with '?'.
func EncodeSymbol(symbol string) []uint16 {
	out := make([]uint16, SlotSymbolSlots)

	b := []byte(symbol)
	if len(b) > SymbolMaxChars {
		b = b[:SymbolMaxChars]
	}

	for i, c := range b {
		if c > 0x7F {
			c = '?'
		}
		if i%2 == 0 {
			out[i/2] |= uint16(c) << 8
		} else {
			out[i/2] |= uint16(c)
		}
	}
	return out
}
