package moderation_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stellar/go/keypair"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/oracle-indexer/pkg/app/errors"
	"github.com/chainsafe/oracle-indexer/pkg/moderation"
	"github.com/chainsafe/oracle-indexer/pkg/moderation/mocks"
	"github.com/chainsafe/oracle-indexer/pkg/oracle"
	oraclemocks "github.com/chainsafe/oracle-indexer/pkg/oracle/mocks"
)

// runGate makes the oracle mock run the report gate against c and bump the
// count the way the state machine does when the gate passes.
func runGate(c oracle.Call) func(context.Context, int64, oracle.ReportGate) (*oracle.Call, error) {
	return func(ctx context.Context, _ int64, gate oracle.ReportGate) (*oracle.Call, error) {
		if err := gate(ctx, &c); err != nil {
			return nil, err
		}
		c.ReportCount++
		return &c, nil
	}
}

func TestReportCall_Accepted(t *testing.T) {
	store := mocks.NewStore(t)
	reporter := oraclemocks.NewService(t)
	addr := keypair.MustRandom().Address()

	reporter.EXPECT().RecordReport(mock.Anything, int64(7), mock.Anything).
		RunAndReturn(runGate(oracle.Call{ID: 7, Status: oracle.StatusOpen, ReportCount: 2})).Once()
	store.EXPECT().Exists(mock.Anything, int64(7), addr).Return(false, nil).Once()
	store.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *moderation.Report) bool {
		return r.CallID == 7 && r.ReporterAddress == addr && r.Reason == "spam" && r.ID.String() != ""
	})).Return(nil).Once()

	svc := moderation.NewService(store, reporter, zap.NewNop())
	res, err := svc.ReportCall(context.Background(), &moderation.ReportRequest{
		CallID:          7,
		ReporterAddress: addr,
		Reason:          "  spam ",
	})
	require.NoError(t, err)
	require.Equal(t, 3, res.ReportCount)
	require.Equal(t, oracle.StatusOpen, res.Status)
}

func TestReportCall_DuplicateIsConflict(t *testing.T) {
	store := mocks.NewStore(t)
	reporter := oraclemocks.NewService(t)
	addr := keypair.MustRandom().Address()

	reporter.EXPECT().RecordReport(mock.Anything, int64(7), mock.Anything).
		RunAndReturn(runGate(oracle.Call{ID: 7, Status: oracle.StatusOpen})).Once()
	store.EXPECT().Exists(mock.Anything, int64(7), addr).Return(true, nil).Once()

	svc := moderation.NewService(store, reporter, zap.NewNop())
	_, err := svc.ReportCall(context.Background(), &moderation.ReportRequest{CallID: 7, ReporterAddress: addr})
	require.True(t, apperrors.Is(err, apperrors.CategoryDataConflict))
	require.ErrorIs(t, err, moderation.ErrDuplicateReport)

	var svcErr *apperrors.ServiceError
	require.True(t, errors.As(err, &svcErr))
	require.Equal(t, "you have already reported this call", svcErr.Message)
}

func TestReportCall_InsertRaceIsConflict(t *testing.T) {
	store := mocks.NewStore(t)
	reporter := oraclemocks.NewService(t)
	addr := keypair.MustRandom().Address()

	reporter.EXPECT().RecordReport(mock.Anything, int64(7), mock.Anything).
		RunAndReturn(runGate(oracle.Call{ID: 7, Status: oracle.StatusOpen})).Once()
	store.EXPECT().Exists(mock.Anything, int64(7), addr).Return(false, nil).Once()
	store.EXPECT().Create(mock.Anything, mock.Anything).Return(moderation.ErrDuplicateReport).Once()

	svc := moderation.NewService(store, reporter, zap.NewNop())
	_, err := svc.ReportCall(context.Background(), &moderation.ReportRequest{CallID: 7, ReporterAddress: addr})
	require.True(t, apperrors.Is(err, apperrors.CategoryDataConflict))
}

func TestReportCall_ResolvedMarketRejected(t *testing.T) {
	for _, st := range []oracle.Status{oracle.StatusResolvedYes, oracle.StatusResolvedNo} {
		t.Run(st.String(), func(t *testing.T) {
			store := mocks.NewStore(t)
			reporter := oraclemocks.NewService(t)

			reporter.EXPECT().RecordReport(mock.Anything, int64(7), mock.Anything).
				RunAndReturn(runGate(oracle.Call{ID: 7, Status: st})).Once()

			svc := moderation.NewService(store, reporter, zap.NewNop())
			_, err := svc.ReportCall(context.Background(), &moderation.ReportRequest{
				CallID:          7,
				ReporterAddress: keypair.MustRandom().Address(),
			})
			require.True(t, apperrors.Is(err, apperrors.CategoryDataError))

			var svcErr *apperrors.ServiceError
			require.True(t, errors.As(err, &svcErr))
			require.Equal(t, "cannot report a resolved market", svcErr.Message)
		})
	}
}

func TestReportCall_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *moderation.ReportRequest
	}{
		{"nil request", nil},
		{"missing call id", &moderation.ReportRequest{ReporterAddress: keypair.MustRandom().Address()}},
		{"missing reporter", &moderation.ReportRequest{CallID: 1}},
		{"not a strkey", &moderation.ReportRequest{CallID: 1, ReporterAddress: "0xabc"}},
		{"reason too long", &moderation.ReportRequest{
			CallID:          1,
			ReporterAddress: keypair.MustRandom().Address(),
			Reason:          strings.Repeat("x", 501),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := moderation.NewService(mocks.NewStore(t), oraclemocks.NewService(t), zap.NewNop())
			_, err := svc.ReportCall(context.Background(), tt.req)
			require.True(t, apperrors.Is(err, apperrors.CategoryDataError), "got %v", err)
		})
	}
}

func TestReportCall_CallNotFound(t *testing.T) {
	reporter := oraclemocks.NewService(t)
	reporter.EXPECT().RecordReport(mock.Anything, int64(404), mock.Anything).
		Return(nil, apperrors.ResourceNotFoundError(oracle.ErrCallNotFound, "call not found")).Once()

	svc := moderation.NewService(mocks.NewStore(t), reporter, zap.NewNop())
	_, err := svc.ReportCall(context.Background(), &moderation.ReportRequest{
		CallID:          404,
		ReporterAddress: keypair.MustRandom().Address(),
	})
	require.True(t, apperrors.Is(err, apperrors.CategoryResourceNotFound))
}

func TestListReports(t *testing.T) {
	store := mocks.NewStore(t)
	store.EXPECT().ListByCall(mock.Anything, int64(3)).
		Return([]*moderation.Report{{CallID: 3}, {CallID: 3}}, nil).Once()

	svc := moderation.NewService(store, oraclemocks.NewService(t), zap.NewNop())
	reports, err := svc.ListReports(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, reports, 2)
}
