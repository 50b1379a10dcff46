// Package ledger talks to a Soroban RPC node over JSON-RPC 2.0.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/oracle-indexer/pkg/retry"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultPageLimit = 100
	// DefaultMaxPages bounds a single GetEvents call.
	DefaultMaxPages = 50

	maxResponseSize = 16 << 20
)

// JSON-RPC error codes that describe a bad request rather than a node problem.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// Client implements RPC over HTTP.
type Client struct {
	endpoint  string
	client    *http.Client
	pageLimit int
	maxPages  int
	logger    *zap.Logger
	requestID atomic.Uint64
}

// ClientOption configures Client.
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// WithPageLimit sets the getEvents page size.
func WithPageLimit(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.pageLimit = n
		}
	}
}

// WithMaxPages caps how many pages GetEvents follows.
func WithMaxPages(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.maxPages = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a new Soroban RPC client.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:  endpoint,
		client:    &http.Client{Timeout: DefaultTimeout},
		pageLimit: DefaultPageLimit,
		maxPages:  DefaultMaxPages,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is a JSON-RPC error object returned by the node.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
}

// ErrUnexpectedStatus is wrapped by errors for non-200 HTTP responses.
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// call performs a single JSON-RPC round trip. Structural failures are marked
// with retry.Permanent; everything else is left retryable.
func (c *Client) call(ctx context.Context, method string, params, result any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.requestID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return retry.Permanent(fmt.Errorf("marshal %s request: %w", method, err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return retry.Permanent(fmt.Errorf("create %s request: %w", method, err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read %s response: %w", method, err)
	}

	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("%s: %w %d: %s", method, ErrUnexpectedStatus, resp.StatusCode, truncate(raw, 256))
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return retry.Permanent(statusErr)
		}
		return statusErr
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(raw, &rpcResp); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if rpcResp.Error != nil {
		switch rpcResp.Error.Code {
		case codeParseError, codeInvalidRequest, codeMethodNotFound, codeInvalidParams:
			return retry.Permanent(fmt.Errorf("%s: %w", method, rpcResp.Error))
		default:
			return fmt.Errorf("%s: %w", method, rpcResp.Error)
		}
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(rpcResp.Result, result); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}

type eventFilter struct {
	Type        string   `json:"type"`
	ContractIDs []string `json:"contractIds"`
}

type pagination struct {
	Limit  int    `json:"limit,omitempty"`
	Cursor string `json:"cursor,omitempty"`
}

type getEventsParams struct {
	StartLedger int64         `json:"startLedger,omitempty"`
	Filters     []eventFilter `json:"filters"`
	Pagination  *pagination   `json:"pagination,omitempty"`
}

type getEventsResult struct {
	Events       []Event `json:"events"`
	LatestLedger int64   `json:"latestLedger"`
	Cursor       string  `json:"cursor"`
}

// GetEvents returns the contract events of contractID from startLedger on, in
// node order. It follows the response cursor until a short page is returned
// or the page cap is hit, in which case the result is marked Truncated.
func (c *Client) GetEvents(ctx context.Context, contractID string, startLedger int64) (*EventPage, error) {
	filters := []eventFilter{{Type: "contract", ContractIDs: []string{contractID}}}
	params := getEventsParams{
		StartLedger: startLedger,
		Filters:     filters,
		Pagination:  &pagination{Limit: c.pageLimit},
	}

	out := &EventPage{}
	for page := 0; page < c.maxPages; page++ {
		var res getEventsResult
		if err := c.call(ctx, "getEvents", params, &res); err != nil {
			return nil, err
		}
		out.Events = append(out.Events, res.Events...)
		out.LatestLedger = res.LatestLedger

		if len(res.Events) < c.pageLimit {
			return out, nil
		}

		cursor := res.Cursor
		if cursor == "" {
			cursor = res.Events[len(res.Events)-1].PagingToken
		}
		if cursor == "" {
			return out, nil
		}
		// startLedger and cursor are mutually exclusive.
		params = getEventsParams{
			Filters:    filters,
			Pagination: &pagination{Limit: c.pageLimit, Cursor: cursor},
		}
	}

	c.logger.Warn("getEvents page limit reached; remaining events are left for the next call",
		zap.String("contract_id", contractID),
		zap.Int64("start_ledger", startLedger),
		zap.Int("max_pages", c.maxPages),
	)
	out.Truncated = true
	return out, nil
}

// GetLatestLedger returns the most recent ledger known to the node.
func (c *Client) GetLatestLedger(ctx context.Context) (*LatestLedger, error) {
	var res LatestLedger
	if err := c.call(ctx, "getLatestLedger", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetLedgerEntries reads ledger entries for base64 encoded LedgerKeys.
func (c *Client) GetLedgerEntries(ctx context.Context, keys []string) ([]LedgerEntry, error) {
	if len(keys) == 0 {
		return nil, retry.Permanent(errors.New("getLedgerEntries: no keys"))
	}
	var res struct {
		Entries []LedgerEntry `json:"entries"`
	}
	if err := c.call(ctx, "getLedgerEntries", map[string]any{"keys": keys}, &res); err != nil {
		return nil, err
	}
	return res.Entries, nil
}

// SendTransaction submits a signed, base64 encoded transaction envelope.
func (c *Client) SendTransaction(ctx context.Context, envelopeXDR string) (*SendResult, error) {
	var res SendResult
	if err := c.call(ctx, "sendTransaction", map[string]string{"transaction": envelopeXDR}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SimulateTransaction runs envelopeXDR against current ledger state without
// submitting it.
func (c *Client) SimulateTransaction(ctx context.Context, envelopeXDR string) (*SimulateResult, error) {
	var res SimulateResult
	if err := c.call(ctx, "simulateTransaction", map[string]string{"transaction": envelopeXDR}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetHealth reports the node health and retention window.
func (c *Client) GetHealth(ctx context.Context) (*Health, error) {
	var res Health
	if err := c.call(ctx, "getHealth", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
