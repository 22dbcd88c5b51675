// internal/daemon/client_test.go
package daemon

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDaemon replies to each method with a canned body and status.
type fakeDaemon struct {
	mu      sync.Mutex
	replies map[string]reply
	seen    []request
}

func (f *fakeDaemon) setReply(method string, r reply) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[method] = r
}

func (f *fakeDaemon) dropReply(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.replies, method)
}

func (f *fakeDaemon) requests() []request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]request(nil), f.seen...)
}

type reply struct {
	status int
	body   string
}

func (f *fakeDaemon) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, pass, ok := r.BasicAuth()
	if !ok || user != "rpc" || pass != "secret" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	data, _ := io.ReadAll(r.Body)
	var req request
	if err := json.Unmarshal(data, &req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	f.seen = append(f.seen, req)
	rep, ok := f.replies[req.Method]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"result":null,"error":{"code":-32601,"message":"Method not found"},"id":1}`)
		return
	}
	if rep.status != 0 {
		w.WriteHeader(rep.status)
	}
	_, _ = io.WriteString(w, rep.body)
}

func newTestClient(t *testing.T, f *fakeDaemon) *Client {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	c, err := New(Config{URL: srv.URL, User: "rpc", Password: "secret"})
	require.NoError(t, err)
	return c
}

func TestNew_RequiresURL(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
}

func TestGetInfo_Decodes(t *testing.T) {
	f := &fakeDaemon{replies: map[string]reply{
		"getinfo": {body: `{"result":{"version":80700,"protocolversion":70002,"walletversion":60000,` +
			`"testnet":true,"connections":8,"errors":""},"error":null,"id":1}`},
	}}
	c := newTestClient(t, f)

	info, err := c.GetInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Info{
		Version:         "80700",
		ProtocolVersion: 70002,
		WalletVersion:   60000,
		Testnet:         true,
		Connections:     8,
	}, info)

	seen := f.requests()
	require.Len(t, seen, 1)
	assert.Equal(t, "1.0", seen[0].JSONRPC)
	assert.Empty(t, seen[0].Params)
}

func TestGetInfo_StringVersion(t *testing.T) {
	f := &fakeDaemon{replies: map[string]reply{
		"getinfo": {body: `{"result":{"version":"v1.4.2.0-g","connections":-1,"errors":"Warning: unknown new rules"},"error":null,"id":1}`},
	}}
	c := newTestClient(t, f)

	info, err := c.GetInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1.4.2.0-g", info.Version)
	assert.EqualValues(t, -1, info.Connections)
	assert.Equal(t, "Warning: unknown new rules", info.Errors)
}

func TestGetMiningInfo_NumericAndStructuredDifficulty(t *testing.T) {
	f := &fakeDaemon{replies: map[string]reply{
		"getmininginfo": {body: `{"result":{"blocks":1200,"difficulty":41867.16992903,"networkhashps":1.5e12},"error":null,"id":1}`},
	}}
	c := newTestClient(t, f)

	mi, err := c.GetMiningInfo(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1200, mi.Blocks)
	assert.InDelta(t, 41867.16992903, mi.Difficulty, 1e-9)
	assert.EqualValues(t, uint64(1500000000000), mi.NetworkHashPerSec)

	f.setReply("getmininginfo", reply{body: `{"result":{"blocks":7,"difficulty":{"proof-of-work":12.5,"proof-of-stake":0.5}},"error":null,"id":2}`})

	mi, err = c.GetMiningInfo(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 7, mi.Blocks)
	assert.InDelta(t, 12.5, mi.Difficulty, 1e-9)
	assert.Zero(t, mi.NetworkHashPerSec)
}

func TestSubmitBlock_ErrorCodes(t *testing.T) {
	f := &fakeDaemon{replies: map[string]reply{
		"submitblock": {status: http.StatusInternalServerError, body: `{"result":null,"error":{"code":-22,"message":"Block decode failed"},"id":1}`},
	}}
	c := newTestClient(t, f)

	err := c.SubmitBlock(context.Background(), "")
	re, ok := AsRPCError(err)
	require.True(t, ok, "expected rpc error, got %v", err)
	assert.Equal(t, CodeDeserializationError, re.Code)
	assert.Equal(t, "submitblock", re.Method)
	assert.Equal(t, []any{""}, f.requests()[0].Params)

	f.dropReply("submitblock")
	err = c.SubmitBlock(context.Background(), "")
	re, ok = AsRPCError(err)
	require.True(t, ok)
	assert.Equal(t, CodeMethodNotFound, re.Code)
}

func TestSubmitBlock_Rejected(t *testing.T) {
	f := &fakeDaemon{replies: map[string]reply{
		"submitblock": {body: `{"result":"rejected","error":null,"id":1}`},
	}}
	c := newTestClient(t, f)

	err := c.SubmitBlock(context.Background(), "00")
	var rej *RejectedError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, "rejected", rej.Reason)

	f.setReply("submitblock", reply{body: `{"result":null,"error":null,"id":2}`})
	require.NoError(t, c.SubmitBlock(context.Background(), "00"))
}

func TestMakeRawRequest_ReturnsResultVerbatim(t *testing.T) {
	f := &fakeDaemon{replies: map[string]reply{
		"getdifficulty": {body: `{"result":{"proof-of-work":41867.16992903,"proof-of-stake":0.00390625,"search-interval":0},"error":null,"id":1}`},
	}}
	c := newTestClient(t, f)

	raw, err := c.MakeRawRequest(context.Background(), "getdifficulty")
	require.NoError(t, err)
	assert.Contains(t, raw, `"proof-of-stake":0.00390625`)
}

func TestCall_TransportFailures(t *testing.T) {
	f := &fakeDaemon{replies: map[string]reply{
		"getinfo": {body: `<html>bad gateway</html>`},
	}}
	c := newTestClient(t, f)

	_, err := c.GetInfo(context.Background())
	var te *TransportError
	require.ErrorAs(t, err, &te)
	_, isRPC := AsRPCError(err)
	assert.False(t, isRPC)

	// wrong credentials: 401 with an empty body
	bad, err := New(Config{URL: c.url, User: "rpc", Password: "nope"})
	require.NoError(t, err)
	_, err = bad.GetMiningInfo(context.Background())
	require.ErrorAs(t, err, &te)
	assert.Contains(t, te.Error(), "401")

	// unreachable
	srv := httptest.NewServer(f)
	url := srv.URL
	srv.Close()
	gone, err := New(Config{URL: url})
	require.NoError(t, err)
	_, err = gone.MakeRawRequest(context.Background(), "getdifficulty")
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "getdifficulty", te.Method)
}
