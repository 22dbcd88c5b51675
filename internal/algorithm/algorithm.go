// internal/algorithm/algorithm.go
package algorithm

import "strings"

// multipliers convert network difficulty into block (share-target) difficulty.
// Values follow the conventions stratum pools use for each hash function.
var multipliers = map[string]float64{
	"sha256":   1,
	"scrypt":   1 << 16,
	"scrypt-n": 1 << 16,
	"x11":      1,
	"x13":      1,
	"x15":      1,
	"x17":      1,
	"quark":    1,
	"qubit":    1,
	"nist5":    1,
	"skein":    1,
	"groestl":  1 << 8,
	"keccak":   1 << 8,
	"blake":    1 << 8,
}

// Multiplier returns the difficulty multiplier for the named algorithm.
// Lookup is case-insensitive.
func Multiplier(name string) (float64, bool) {
	m, ok := multipliers[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}
