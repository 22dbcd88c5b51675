// internal/network/difficulty.go
package network

import (
	"strings"

	"github.com/valyala/fastjson"
)

// posMarker identifies the proof-of-stake member of a hybrid getdifficulty reply.
const posMarker = "proof-of-stake"

// DifficultyKind tags the shape of a getdifficulty reply.
type DifficultyKind uint8

const (
	// DifficultyUnknown is anything that did not decode as one of the known shapes.
	DifficultyUnknown DifficultyKind = iota
	// DifficultyNumeric is a bare number (pure proof-of-work chains).
	DifficultyNumeric
	// DifficultyStructured is an object, e.g.
	// {"proof-of-work":41867.16992903,"proof-of-stake":0.00390625,"search-interval":0}
	DifficultyStructured
)

// DifficultyReply is a best-effort decode of getdifficulty.
type DifficultyReply struct {
	Kind DifficultyKind

	ProofOfWork  float64
	ProofOfStake float64

	// HasProofOfStake is set when a structured reply carries a member whose
	// name contains "proof-of-stake".
	HasProofOfStake bool
}

// ParseDifficulty decodes a raw getdifficulty result.
// It never fails; undecodable input yields DifficultyUnknown.
func ParseDifficulty(raw string) DifficultyReply {
	var p fastjson.Parser
	v, err := p.Parse(raw)
	if err != nil {
		return DifficultyReply{Kind: DifficultyUnknown}
	}

	switch v.Type() {
	case fastjson.TypeNumber:
		f, err := v.Float64()
		if err != nil {
			return DifficultyReply{Kind: DifficultyUnknown}
		}
		return DifficultyReply{Kind: DifficultyNumeric, ProofOfWork: f}

	case fastjson.TypeObject:
		o, err := v.Object()
		if err != nil {
			return DifficultyReply{Kind: DifficultyUnknown}
		}
		r := DifficultyReply{Kind: DifficultyStructured}
		o.Visit(func(key []byte, mv *fastjson.Value) {
			k := string(key)
			switch {
			case k == "proof-of-work":
				r.ProofOfWork = mv.GetFloat64()
			case strings.Contains(k, posMarker):
				r.HasProofOfStake = true
				if k == posMarker {
					r.ProofOfStake = mv.GetFloat64()
				}
			}
		})
		return r

	default:
		return DifficultyReply{Kind: DifficultyUnknown}
	}
}

// isProofOfStakeReply decides the hybrid flag from a raw reply.
// Unknown shapes fall back to plain containment of the marker.
func isProofOfStakeReply(raw string) bool {
	r := ParseDifficulty(raw)
	switch r.Kind {
	case DifficultyStructured:
		return r.HasProofOfStake
	case DifficultyNumeric:
		return false
	default:
		return strings.Contains(raw, posMarker)
	}
}
