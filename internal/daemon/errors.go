// internal/daemon/errors.go
package daemon

import (
	"errors"
	"fmt"
)

// Bitcoind-compatible RPC error codes.
// Only the ones the pool reacts to are listed.
const (
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
	CodeParseError     = -32700

	CodeMiscError               = -1
	CodeTypeError               = -3
	CodeInvalidParameter        = -8
	CodeClientNotConnected      = -9
	CodeClientInInitialDownload = -10
	CodeDeserializationError    = -22
)

// RPCError is an error reply sent by the daemon.
// The daemon answered, so the transport is fine; Code says what went wrong.
type RPCError struct {
	Method  string
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("daemon rpc %s: code=%d: %s", e.Method, e.Code, e.Message)
}

// TransportError means no usable reply was obtained:
// connection refused, timeout, non-JSON body, auth failure.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("daemon transport %s: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RejectedError is returned by SubmitBlock when the daemon replies with a
// rejection reason instead of null.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return "daemon rejected block: " + e.Reason
}

// AsRPCError extracts an RPCError from err.
func AsRPCError(err error) (*RPCError, bool) {
	var re *RPCError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
