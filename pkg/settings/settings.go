// Package settings keeps the platform settings singleton in sync with the
// AdminParamsChanged events emitted by the platform contract.
package settings

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// SingletonID is the fixed identity of the settings row.
const SingletonID = 1

// ErrSettingsNotFound is returned when the settings row was never bootstrapped.
var ErrSettingsNotFound = errors.New("platform settings not found")

// Settings is the platform configuration projected from the ledger.
type Settings struct {
	ID                  int             `json:"id"`
	FeePercent          decimal.Decimal `json:"feePercent"`
	ContractID          *string         `json:"contractId"`
	OracleContractID    *string         `json:"oracleContractId"`
	LastUpdatedByTxHash *string         `json:"lastUpdatedByTxHash"`
	LastUpdatedAtLedger *int64          `json:"lastUpdatedAtLedger"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// Defaults are the values the singleton is created with.
type Defaults struct {
	FeePercent       decimal.Decimal
	ContractID       string
	OracleContractID string
}

// Store defines settings persistence.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	// Create inserts s unless the singleton already exists. It reports
	// whether a row was inserted.
	Create(ctx context.Context, s *Settings) (bool, error)
	Get(ctx context.Context) (*Settings, error)
	// Update locks the singleton, applies fn and persists the result in one
	// transaction.
	Update(ctx context.Context, fn func(s *Settings) error) (*Settings, error)
}
