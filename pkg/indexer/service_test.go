package indexer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/chainsafe/oracle-indexer/pkg/app/errors"
	"github.com/chainsafe/oracle-indexer/pkg/eventlog"
	"github.com/chainsafe/oracle-indexer/pkg/events"
	"github.com/chainsafe/oracle-indexer/pkg/indexer"
)

type runState bool

func (r runState) IsRunning() bool { return bool(r) }

func TestStatus_EmptyLog(t *testing.T) {
	svc := indexer.NewService(&memLog{}, testContract, runState(false))

	st, err := svc.Status(context.Background())
	require.NoError(t, err)
	require.False(t, st.IsRunning)
	require.Nil(t, st.LastProcessedLedger)
	require.Nil(t, st.LatestEventLedger)
	require.Nil(t, st.LatestEventTimestamp)
	require.Zero(t, st.TotalEventsIndexed)
}

func TestStatus_ReportsCursorAndLatest(t *testing.T) {
	log := &memLog{}
	ctx := context.Background()
	for _, ev := range []struct {
		id     string
		ledger int64
	}{{"a-0", 10}, {"b-0", 30}, {"c-0", 20}} {
		_, err := log.Append(ctx, &eventlog.Record{
			EventID:    ev.id,
			ContractID: testContract,
			EventType:  events.TypeAdminParamsChanged,
			Ledger:     ev.ledger,
		})
		require.NoError(t, err)
	}

	svc := indexer.NewService(log, testContract, runState(true))
	st, err := svc.Status(ctx)
	require.NoError(t, err)
	require.True(t, st.IsRunning)
	require.Equal(t, int64(30), *st.LastProcessedLedger)
	require.Equal(t, int64(30), *st.LatestEventLedger)
	require.Equal(t, int64(3), st.TotalEventsIndexed)
}

func TestStatus_PrefersSavedCursor(t *testing.T) {
	log := &memLog{}
	ctx := context.Background()
	_, err := log.Append(ctx, &eventlog.Record{
		EventID:    "a-0",
		ContractID: testContract,
		EventType:  events.TypeAdminParamsChanged,
		Ledger:     10,
	})
	require.NoError(t, err)
	require.NoError(t, log.SetCursor(ctx, testContract, 250))

	st, err := indexer.NewService(log, testContract, runState(true)).Status(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(250), *st.LastProcessedLedger)
	require.Equal(t, int64(10), *st.LatestEventLedger)
}

func TestEventsByType(t *testing.T) {
	log := &memLog{}
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := log.Append(ctx, &eventlog.Record{
			EventID:   string(rune('a'+i)) + "-0",
			EventType: events.TypeAdminParamsChanged,
			Ledger:    int64(100 + i),
		})
		require.NoError(t, err)
	}
	svc := indexer.NewService(log, testContract, nil)

	records, err := svc.EventsByType(ctx, "AdminParamsChanged", 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, int64(102), records[0].Ledger)

	records, err = svc.EventsByType(ctx, "AdminParamsChanged", 0)
	require.NoError(t, err)
	require.Len(t, records, 3)

	_, err = svc.EventsByType(ctx, "CallCreated", 10)
	require.True(t, apperrors.Is(err, apperrors.CategoryDataError))
}
