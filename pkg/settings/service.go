package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/oracle-indexer/pkg/app/errors"
	"github.com/chainsafe/oracle-indexer/pkg/events"
)

var maxFeePercent = decimal.NewFromInt(100)

// Service defines the platform settings operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// Bootstrap creates the singleton with the configured defaults if it
	// does not exist yet. Safe to call on every start.
	Bootstrap(ctx context.Context) (*Settings, error)
	Get(ctx context.Context) (*Settings, error)
	// ApplyAdminParamsChanged overwrites the fields present in ev and always
	// records ev's transaction hash and ledger.
	ApplyAdminParamsChanged(ctx context.Context, ev *events.AdminParamsChanged) (*Settings, error)
}

type settingsService struct {
	store    Store
	defaults Defaults
	logger   *zap.Logger
}

// NewService creates a settings service
func NewService(store Store, defaults Defaults, logger *zap.Logger) Service {
	return &settingsService{
		store:    store,
		defaults: defaults,
		logger:   logger,
	}
}

func (s *settingsService) Bootstrap(ctx context.Context) (*Settings, error) {
	if err := validateFee(s.defaults.FeePercent); err != nil {
		return nil, fmt.Errorf("invalid default fee: %w", err)
	}

	st := &Settings{
		ID:               SingletonID,
		FeePercent:       s.defaults.FeePercent,
		ContractID:       optionalString(s.defaults.ContractID),
		OracleContractID: optionalString(s.defaults.OracleContractID),
	}
	created, err := s.store.Create(ctx, st)
	if err != nil {
		return nil, err
	}
	if created {
		s.logger.Info("Platform settings created with defaults",
			zap.String("fee_percent", st.FeePercent.String()),
		)
	}
	return s.store.Get(ctx)
}

func (s *settingsService) Get(ctx context.Context) (*Settings, error) {
	st, err := s.store.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrSettingsNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "platform settings not found")
		}
		return nil, apperrors.GeneralError(err)
	}
	return st, nil
}

func (s *settingsService) ApplyAdminParamsChanged(ctx context.Context, ev *events.AdminParamsChanged) (*Settings, error) {
	if ev == nil {
		return nil, apperrors.BadRequestError(nil, "missing event")
	}
	if fee, ok := ev.FeePercent.Get(); ok {
		if err := validateFee(fee); err != nil {
			return nil, apperrors.BadRequestError(fmt.Errorf("%w: %w", events.ErrMalformedEvent, err), "fee percent out of range")
		}
	}

	updated, err := s.store.Update(ctx, func(st *Settings) error {
		if fee, ok := ev.FeePercent.Get(); ok {
			st.FeePercent = fee
		}
		if id, ok := ev.ContractID.Get(); ok {
			st.ContractID = &id
		}
		if id, ok := ev.OracleContractID.Get(); ok {
			st.OracleContractID = &id
		}

		txHash, ledger := ev.TxHash, ev.Ledger
		st.LastUpdatedByTxHash = &txHash
		st.LastUpdatedAtLedger = &ledger
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSettingsNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "platform settings not found")
		}
		return nil, err
	}

	s.logger.Info("Platform settings updated",
		zap.String("tx_hash", ev.TxHash),
		zap.Int64("ledger", ev.Ledger),
		zap.Bool("fee_changed", ev.FeePercent.IsSet()),
		zap.Bool("contract_changed", ev.ContractID.IsSet()),
		zap.Bool("oracle_contract_changed", ev.OracleContractID.IsSet()),
	)
	return updated, nil
}

func validateFee(fee decimal.Decimal) error {
	if fee.IsNegative() || fee.GreaterThan(maxFeePercent) {
		return fmt.Errorf("fee percent %s not in [0, 100]", fee)
	}
	return nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
