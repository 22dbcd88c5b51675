// internal/network/detect.go
package network

import (
	"context"

	"go.uber.org/zap"

	"github.com/tamzrod/coin-netmon/internal/daemon"
)

// DetectProofOfStake asks for the raw getdifficulty reply.
// Proof-of-work coins answer with a bare number; proof-of-stake hybrids
// answer with an object carrying a proof-of-stake member.
// Failure is logged and reported as false. One attempt, no retry.
func DetectProofOfStake(ctx context.Context, client DaemonClient, log *zap.Logger) bool {
	raw, err := client.MakeRawRequest(ctx, "getdifficulty")
	if err != nil {
		log.Error("can not read getdifficulty, the coin may not support the request", zap.Error(err))
		return false
	}
	return isProofOfStakeReply(raw)
}

// DetectSubmitBlock submits an empty block and classifies the error reply.
//
//	-32601 method not found      -> False (no submitblock RPC)
//	-22    block decode failed   -> True  (RPC exists, payload rejected)
//	anything else                -> Unknown
//
// An accepted empty block is also left Unknown.
func DetectSubmitBlock(ctx context.Context, client DaemonClient, log *zap.Logger) Tristate {
	err := client.SubmitBlock(ctx, "")
	if err == nil {
		return Unknown
	}

	re, ok := daemon.AsRPCError(err)
	if !ok {
		log.Error("can not probe submitblock", zap.Error(err))
		return Unknown
	}

	switch re.Code {
	case daemon.CodeMethodNotFound:
		return False
	case daemon.CodeDeserializationError:
		return True
	default:
		log.Error("unexpected submitblock probe reply",
			zap.Int("code", re.Code),
			zap.String("message", re.Message),
		)
		return Unknown
	}
}
