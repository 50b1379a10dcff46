package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/oracle-indexer/pkg/ledger"
	"github.com/chainsafe/oracle-indexer/pkg/ledger/mocks"
	"github.com/chainsafe/oracle-indexer/pkg/retry"
)

var errReset = errors.New("connection reset by peer")

func fastPolicy(attempts int) retry.Policy {
	return retry.New(attempts, time.Nanosecond)
}

func TestGateway_FetchEvents_RetriesTransient(t *testing.T) {
	rpc := mocks.NewRPC(t)
	rpc.EXPECT().GetEvents(mock.Anything, "CORACLE", int64(10)).Return(nil, errReset).Twice()
	rpc.EXPECT().GetEvents(mock.Anything, "CORACLE", int64(10)).
		Return(&ledger.EventPage{Events: []ledger.Event{{ID: "a-0", Ledger: 10}}, LatestLedger: 12}, nil).Once()

	gw := ledger.NewGateway(rpc, fastPolicy(4))
	page, err := gw.FetchEvents(context.Background(), "CORACLE", 10)
	require.NoError(t, err)
	require.Len(t, page.Events, 1)
	require.Equal(t, int64(12), page.LatestLedger)
}

func TestGateway_LatestLedger_GivesUp(t *testing.T) {
	rpc := mocks.NewRPC(t)
	rpc.EXPECT().GetLatestLedger(mock.Anything).Return(nil, errReset).Times(3)

	gw := ledger.NewGateway(rpc, fastPolicy(3))
	_, err := gw.LatestLedger(context.Background())
	require.ErrorIs(t, err, errReset)

	var retryErr *retry.Error
	require.ErrorAs(t, err, &retryErr)
	require.Equal(t, 3, retryErr.Attempts)
}

func TestGateway_SubmitTransaction(t *testing.T) {
	t.Run("try again later is retried", func(t *testing.T) {
		rpc := mocks.NewRPC(t)
		rpc.EXPECT().SendTransaction(mock.Anything, "ENV").
			Return(&ledger.SendResult{Status: ledger.SendStatusTryAgainLater}, nil).Once()
		rpc.EXPECT().SendTransaction(mock.Anything, "ENV").
			Return(&ledger.SendResult{Status: ledger.SendStatusPending, Hash: "h1"}, nil).Once()

		res, err := ledger.NewGateway(rpc, fastPolicy(4)).SubmitTransaction(context.Background(), "ENV")
		require.NoError(t, err)
		require.Equal(t, "h1", res.Hash)
	})

	t.Run("error status is not retried", func(t *testing.T) {
		rpc := mocks.NewRPC(t)
		rpc.EXPECT().SendTransaction(mock.Anything, "ENV").
			Return(&ledger.SendResult{Status: ledger.SendStatusError, Hash: "h2"}, nil).Once()

		_, err := ledger.NewGateway(rpc, fastPolicy(4)).SubmitTransaction(context.Background(), "ENV")
		require.ErrorIs(t, err, ledger.ErrTransactionRejected)
	})
}

func TestGateway_Simulate_ErrorIsPermanent(t *testing.T) {
	rpc := mocks.NewRPC(t)
	rpc.EXPECT().SimulateTransaction(mock.Anything, "ENV").
		Return(&ledger.SimulateResult{Error: "HostError: trapped"}, nil).Once()

	_, err := ledger.NewGateway(rpc, fastPolicy(4)).Simulate(context.Background(), "ENV")
	require.ErrorIs(t, err, ledger.ErrSimulationFailed)
}

func TestGateway_ReadLedgerEntries(t *testing.T) {
	rpc := mocks.NewRPC(t)
	rpc.EXPECT().GetLedgerEntries(mock.Anything, []string{"k1", "k2"}).
		Return([]ledger.LedgerEntry{{Key: "k1"}}, nil).Once()

	entries, err := ledger.NewGateway(rpc, fastPolicy(1)).ReadLedgerEntries(context.Background(), "k1", "k2")
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestGateway_Health(t *testing.T) {
	rpc := mocks.NewRPC(t)
	rpc.EXPECT().GetHealth(mock.Anything).
		Return(&ledger.Health{Status: ledger.HealthStatusHealthy, LatestLedger: 99}, nil).Once()

	h, err := ledger.NewGateway(rpc, fastPolicy(4)).Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, ledger.HealthStatusHealthy, h.Status)
}
