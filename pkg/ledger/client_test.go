package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

// rpcServer answers every request with handler's result and records the
// decoded requests.
func rpcServer(t *testing.T, handler func(req capturedRequest) (any, *RPCError)) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var seen []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req capturedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		seen = append(seen, req)

		result, rpcErr := handler(req)
		resp := map[string]any{"jsonrpc": "2.0", "id": 1}
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func isPermanent(err error) bool {
	var perm *backoff.PermanentError
	return errors.As(err, &perm)
}

func TestClient_GetLatestLedger(t *testing.T) {
	srv, seen := rpcServer(t, func(capturedRequest) (any, *RPCError) {
		return map[string]any{"id": "abc", "protocolVersion": 22, "sequence": 1234}, nil
	})

	got, err := NewClient(srv.URL).GetLatestLedger(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1234), got.Sequence)
	require.Equal(t, 22, got.ProtocolVersion)
	require.Len(t, *seen, 1)
	require.Equal(t, "getLatestLedger", (*seen)[0].Method)
}

func TestClient_GetEvents_FollowsCursor(t *testing.T) {
	page := func(start, n int) []Event {
		out := make([]Event, n)
		for i := range out {
			out[i] = Event{
				Ledger:      int64(100 + start + i),
				ID:          fmt.Sprintf("%d-0", start+i),
				PagingToken: fmt.Sprintf("tok-%d", start+i),
				TxHash:      fmt.Sprintf("tx%d", start+i),
			}
		}
		return out
	}

	srv, seen := rpcServer(t, func(req capturedRequest) (any, *RPCError) {
		var params getEventsParams
		require.NoError(t, json.Unmarshal(req.Params, &params))
		if params.Pagination.Cursor == "" {
			return getEventsResult{Events: page(0, 2), LatestLedger: 200, Cursor: "c1"}, nil
		}
		return getEventsResult{Events: page(2, 1), LatestLedger: 200}, nil
	})

	got, err := NewClient(srv.URL, WithPageLimit(2)).GetEvents(context.Background(), "CCONTRACT", 100)
	require.NoError(t, err)
	require.Len(t, got.Events, 3)
	require.Equal(t, "tx2", got.Events[2].TxHash)
	require.Equal(t, int64(200), got.LatestLedger)
	require.False(t, got.Truncated)

	require.Len(t, *seen, 2)
	var first, second getEventsParams
	require.NoError(t, json.Unmarshal((*seen)[0].Params, &first))
	require.NoError(t, json.Unmarshal((*seen)[1].Params, &second))

	require.Equal(t, int64(100), first.StartLedger)
	require.Equal(t, []string{"CCONTRACT"}, first.Filters[0].ContractIDs)
	require.Equal(t, "contract", first.Filters[0].Type)
	require.Equal(t, int64(0), second.StartLedger)
	require.Equal(t, "c1", second.Pagination.Cursor)
}

func TestClient_GetEvents_StopsAtMaxPages(t *testing.T) {
	srv, seen := rpcServer(t, func(capturedRequest) (any, *RPCError) {
		return getEventsResult{Events: []Event{{ID: "1-0", PagingToken: "p"}}, LatestLedger: 9, Cursor: "next"}, nil
	})

	got, err := NewClient(srv.URL, WithPageLimit(1), WithMaxPages(3)).
		GetEvents(context.Background(), "CCONTRACT", 1)
	require.NoError(t, err)
	require.Len(t, got.Events, 3)
	require.True(t, got.Truncated)
	require.Len(t, *seen, 3)
}

func TestClient_ErrorClassification(t *testing.T) {
	t.Run("invalid params is permanent", func(t *testing.T) {
		srv, _ := rpcServer(t, func(capturedRequest) (any, *RPCError) {
			return nil, &RPCError{Code: codeInvalidParams, Message: "startLedger must be positive"}
		})
		_, err := NewClient(srv.URL).GetLatestLedger(context.Background())
		require.Error(t, err)
		require.True(t, isPermanent(err))

		var rpcErr *RPCError
		require.ErrorAs(t, err, &rpcErr)
		require.Equal(t, codeInvalidParams, rpcErr.Code)
	})

	t.Run("server error code is transient", func(t *testing.T) {
		srv, _ := rpcServer(t, func(capturedRequest) (any, *RPCError) {
			return nil, &RPCError{Code: -32000, Message: "database locked"}
		})
		_, err := NewClient(srv.URL).GetLatestLedger(context.Background())
		require.Error(t, err)
		require.False(t, isPermanent(err))
	})

	statusCases := []struct {
		status    int
		permanent bool
	}{
		{http.StatusBadRequest, true},
		{http.StatusTooManyRequests, false},
		{http.StatusServiceUnavailable, false},
	}
	for _, tc := range statusCases {
		t.Run(fmt.Sprintf("http %d", tc.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "nope", tc.status)
			}))
			t.Cleanup(srv.Close)

			_, err := NewClient(srv.URL).GetHealth(context.Background())
			require.ErrorIs(t, err, ErrUnexpectedStatus)
			require.Equal(t, tc.permanent, isPermanent(err))
		})
	}
}

func TestClient_GetLedgerEntries_RequiresKeys(t *testing.T) {
	_, err := NewClient("http://127.0.0.1:0").GetLedgerEntries(context.Background(), nil)
	require.Error(t, err)
	require.True(t, isPermanent(err))
}

func TestClient_SendTransaction(t *testing.T) {
	srv, seen := rpcServer(t, func(capturedRequest) (any, *RPCError) {
		return SendResult{Status: SendStatusPending, Hash: "deadbeef"}, nil
	})

	res, err := NewClient(srv.URL).SendTransaction(context.Background(), "AAAA")
	require.NoError(t, err)
	require.Equal(t, SendStatusPending, res.Status)

	var params map[string]string
	require.NoError(t, json.Unmarshal((*seen)[0].Params, &params))
	require.Equal(t, "AAAA", params["transaction"])
}
