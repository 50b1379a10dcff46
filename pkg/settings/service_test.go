package settings_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/oracle-indexer/pkg/app/errors"
	"github.com/chainsafe/oracle-indexer/pkg/events"
	"github.com/chainsafe/oracle-indexer/pkg/settings"
	"github.com/chainsafe/oracle-indexer/pkg/settings/mocks"
)

func strPtr(s string) *string { return &s }

// applyTo makes the store mock run the update function against current.
func applyTo(current *settings.Settings) func(context.Context, func(*settings.Settings) error) (*settings.Settings, error) {
	return func(_ context.Context, fn func(*settings.Settings) error) (*settings.Settings, error) {
		cp := *current
		if err := fn(&cp); err != nil {
			return nil, err
		}
		return &cp, nil
	}
}

func TestApplyAdminParamsChanged_FeeOnlyLeavesContractsUntouched(t *testing.T) {
	store := mocks.NewStore(t)
	current := &settings.Settings{
		ID:               settings.SingletonID,
		FeePercent:       decimal.RequireFromString("1.0"),
		ContractID:       strPtr("CPLATFORM"),
		OracleContractID: strPtr("CORACLE"),
	}
	store.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(applyTo(current)).Once()

	svc := settings.NewService(store, settings.Defaults{}, zap.NewNop())
	got, err := svc.ApplyAdminParamsChanged(context.Background(), &events.AdminParamsChanged{
		FeePercent: events.Some(decimal.RequireFromString("2.5")),
		TxHash:     "feed",
		Ledger:     777,
	})
	require.NoError(t, err)

	require.True(t, got.FeePercent.Equal(decimal.RequireFromString("2.5")))
	require.Equal(t, "CPLATFORM", *got.ContractID)
	require.Equal(t, "CORACLE", *got.OracleContractID)
	require.Equal(t, "feed", *got.LastUpdatedByTxHash)
	require.Equal(t, int64(777), *got.LastUpdatedAtLedger)
}

func TestApplyAdminParamsChanged_EmptyPatchStillUpdatesAudit(t *testing.T) {
	store := mocks.NewStore(t)
	current := &settings.Settings{
		ID:                  settings.SingletonID,
		FeePercent:          decimal.RequireFromString("1.0"),
		LastUpdatedByTxHash: strPtr("old"),
	}
	store.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(applyTo(current)).Once()

	svc := settings.NewService(store, settings.Defaults{}, zap.NewNop())
	got, err := svc.ApplyAdminParamsChanged(context.Background(), &events.AdminParamsChanged{
		TxHash: "new",
		Ledger: 9,
	})
	require.NoError(t, err)
	require.True(t, got.FeePercent.Equal(decimal.RequireFromString("1.0")))
	require.Nil(t, got.ContractID)
	require.Equal(t, "new", *got.LastUpdatedByTxHash)
	require.Equal(t, int64(9), *got.LastUpdatedAtLedger)
}

func TestApplyAdminParamsChanged_RejectsOutOfRangeFee(t *testing.T) {
	for _, fee := range []string{"100.01", "101", "-0.05"} {
		store := mocks.NewStore(t)
		svc := settings.NewService(store, settings.Defaults{}, zap.NewNop())

		_, err := svc.ApplyAdminParamsChanged(context.Background(), &events.AdminParamsChanged{
			FeePercent: events.Some(decimal.RequireFromString(fee)),
			TxHash:     "bad",
			Ledger:     1,
		})
		require.True(t, apperrors.Is(err, apperrors.CategoryDataError), fee)
		require.ErrorIs(t, err, events.ErrMalformedEvent)
	}
}

func TestApplyAdminParamsChanged_NotBootstrapped(t *testing.T) {
	store := mocks.NewStore(t)
	store.EXPECT().Update(mock.Anything, mock.Anything).Return(nil, settings.ErrSettingsNotFound).Once()

	svc := settings.NewService(store, settings.Defaults{}, zap.NewNop())
	_, err := svc.ApplyAdminParamsChanged(context.Background(), &events.AdminParamsChanged{TxHash: "x", Ledger: 1})
	require.True(t, apperrors.Is(err, apperrors.CategoryResourceNotFound))
}

func TestBootstrap(t *testing.T) {
	store := mocks.NewStore(t)
	defaults := settings.Defaults{
		FeePercent: decimal.RequireFromString("1.0"),
		ContractID: "CPLATFORM",
	}

	store.EXPECT().Create(mock.Anything, mock.MatchedBy(func(s *settings.Settings) bool {
		return s.ID == settings.SingletonID &&
			s.FeePercent.Equal(defaults.FeePercent) &&
			s.ContractID != nil && *s.ContractID == "CPLATFORM" &&
			s.OracleContractID == nil
	})).Return(true, nil).Once()
	store.EXPECT().Get(mock.Anything).Return(&settings.Settings{
		ID:         settings.SingletonID,
		FeePercent: defaults.FeePercent,
		ContractID: strPtr("CPLATFORM"),
	}, nil).Once()

	got, err := settings.NewService(store, defaults, zap.NewNop()).Bootstrap(context.Background())
	require.NoError(t, err)
	require.Equal(t, settings.SingletonID, got.ID)
}

func TestBootstrap_RejectsInvalidDefaultFee(t *testing.T) {
	store := mocks.NewStore(t)
	svc := settings.NewService(store, settings.Defaults{FeePercent: decimal.NewFromInt(-1)}, zap.NewNop())

	_, err := svc.Bootstrap(context.Background())
	require.Error(t, err)
}

func TestGet_NotFound(t *testing.T) {
	store := mocks.NewStore(t)
	store.EXPECT().Get(mock.Anything).Return(nil, settings.ErrSettingsNotFound).Once()

	_, err := settings.NewService(store, settings.Defaults{}, zap.NewNop()).Get(context.Background())
	require.True(t, apperrors.Is(err, apperrors.CategoryResourceNotFound))
	require.ErrorIs(t, err, settings.ErrSettingsNotFound)
}

func TestProjector_RoutesAdminParamsChanged(t *testing.T) {
	svc := mocks.NewService(t)
	data := &events.AdminParamsChanged{TxHash: "abc", Ledger: 5}
	svc.EXPECT().ApplyAdminParamsChanged(mock.Anything, data).Return(&settings.Settings{}, nil).Once()

	p := settings.NewProjector(svc)
	require.Equal(t, []events.Type{events.TypeAdminParamsChanged}, p.Types())
	require.NoError(t, p.Project(context.Background(), &events.Event{Type: events.TypeAdminParamsChanged, Data: data}))

	err := p.Project(context.Background(), &events.Event{Type: events.TypeAdminParamsChanged, Data: "nope"})
	require.Error(t, err)
}
