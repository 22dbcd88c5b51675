// internal/daemon/client.go
package daemon

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/valyala/fastjson"
)

// DefaultTimeout bounds a single RPC round trip when Config.Timeout is zero.
const DefaultTimeout = 5 * time.Second

// Config is minimal transport config.
type Config struct {
	URL      string
	User     string
	Password string
	Timeout  time.Duration
}

// Client talks JSON-RPC 1.0 over HTTP to a bitcoind-style coin daemon.
// One HTTP request per call. No retries.
type Client struct {
	url      string
	user     string
	password string
	http     *http.Client

	id      atomic.Uint64
	parsers fastjson.ParserPool
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// New creates a daemon client. It does not dial; the first call does.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("daemon client: url required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		url:      cfg.URL,
		user:     cfg.User,
		password: cfg.Password,
		http:     &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// GetInfo issues getinfo.
func (c *Client) GetInfo(ctx context.Context) (Info, error) {
	const method = "getinfo"

	raw, err := c.call(ctx, method, nil)
	if err != nil {
		return Info{}, err
	}

	var p fastjson.Parser
	v, err := p.ParseBytes(raw)
	if err != nil {
		return Info{}, &TransportError{Method: method, Err: err}
	}
	if v.Type() != fastjson.TypeObject {
		return Info{}, &TransportError{Method: method, Err: fmt.Errorf("unexpected result type %s", v.Type())}
	}

	return Info{
		Version:         scalarText(v.Get("version")),
		ProtocolVersion: v.GetInt("protocolversion"),
		WalletVersion:   v.GetInt("walletversion"),
		Testnet:         v.GetBool("testnet"),
		Connections:     v.GetInt64("connections"),
		Errors:          string(v.GetStringBytes("errors")),
	}, nil
}

// GetMiningInfo issues getmininginfo.
// Proof-of-stake hybrids report difficulty as an object; the proof-of-work
// component is used then.
func (c *Client) GetMiningInfo(ctx context.Context) (MiningInfo, error) {
	const method = "getmininginfo"

	raw, err := c.call(ctx, method, nil)
	if err != nil {
		return MiningInfo{}, err
	}

	var p fastjson.Parser
	v, err := p.ParseBytes(raw)
	if err != nil {
		return MiningInfo{}, &TransportError{Method: method, Err: err}
	}
	if v.Type() != fastjson.TypeObject {
		return MiningInfo{}, &TransportError{Method: method, Err: fmt.Errorf("unexpected result type %s", v.Type())}
	}

	mi := MiningInfo{
		NetworkHashPerSec: toHashrate(v.GetFloat64("networkhashps")),
		Blocks:            v.GetInt64("blocks"),
	}

	if d := v.Get("difficulty"); d != nil {
		switch d.Type() {
		case fastjson.TypeNumber:
			mi.Difficulty = d.GetFloat64()
		case fastjson.TypeObject:
			mi.Difficulty = d.GetFloat64("proof-of-work")
		}
	}

	return mi, nil
}

// SubmitBlock issues submitblock with the given hex payload.
// A null result is acceptance; a string result is a rejection reason.
func (c *Client) SubmitBlock(ctx context.Context, hex string) error {
	const method = "submitblock"

	raw, err := c.call(ctx, method, []any{hex})
	if err != nil {
		return err
	}

	var p fastjson.Parser
	v, err := p.ParseBytes(raw)
	if err != nil {
		return &TransportError{Method: method, Err: err}
	}
	if v.Type() == fastjson.TypeString {
		if reason := string(v.GetStringBytes()); reason != "" {
			return &RejectedError{Reason: reason}
		}
	}
	return nil
}

// MakeRawRequest issues method and returns the result member verbatim.
// The caller owns the interpretation.
func (c *Client) MakeRawRequest(ctx context.Context, method string, params ...any) (string, error) {
	raw, err := c.call(ctx, method, params)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ---- transport ----

// call performs one round trip and returns the raw result JSON.
// Bitcoind reports RPC errors with HTTP 404/500 and a JSON body,
// so the body is decoded regardless of status.
func (c *Client) call(ctx context.Context, method string, params []any) ([]byte, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(request{
		JSONRPC: "1.0",
		ID:      c.id.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.user != "" || c.password != "" {
		req.SetBasicAuth(c.user, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}

	p := c.parsers.Get()
	defer c.parsers.Put(p)

	v, err := p.ParseBytes(data)
	if err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &TransportError{Method: method, Err: fmt.Errorf("http status %d", resp.StatusCode)}
		}
		return nil, &TransportError{Method: method, Err: fmt.Errorf("decode reply: %w", err)}
	}

	if e := v.Get("error"); e != nil && e.Type() != fastjson.TypeNull {
		return nil, &RPCError{
			Method:  method,
			Code:    e.GetInt("code"),
			Message: string(e.GetStringBytes("message")),
		}
	}

	result := v.Get("result")
	if result == nil {
		return nil, &TransportError{Method: method, Err: errors.New("reply has no result member")}
	}

	// MarshalTo copies, so the result outlives the pooled parser.
	return result.MarshalTo(nil), nil
}

// scalarText renders a string or number member as text.
// Daemons disagree on whether version is numeric.
func scalarText(v *fastjson.Value) string {
	if v == nil {
		return ""
	}
	switch v.Type() {
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		return string(v.MarshalTo(nil))
	default:
		return ""
	}
}

func toHashrate(f float64) uint64 {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= math.MaxUint64:
		return math.MaxUint64
	default:
		return uint64(f)
	}
}
