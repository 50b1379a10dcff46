package settings

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// SettingsDao maps to the 'platform_settings' table.
type SettingsDao struct {
	bun.BaseModel       `bun:"table:platform_settings,alias:ps"`
	ID                  int             `bun:"id,pk"`
	FeePercent          decimal.Decimal `bun:"fee_percent,notnull,type:numeric(5,2)"`
	ContractID          *string         `bun:"contract_id,type:varchar(56)"`
	OracleContractID    *string         `bun:"oracle_contract_id,type:varchar(56)"`
	LastUpdatedByTxHash *string         `bun:"last_updated_by_tx_hash,type:varchar(64)"`
	LastUpdatedAtLedger *int64          `bun:"last_updated_at_ledger"`
	CreatedAt           time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt           time.Time       `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toSettingsDao(s *Settings) *SettingsDao {
	return &SettingsDao{
		ID:                  s.ID,
		FeePercent:          s.FeePercent,
		ContractID:          s.ContractID,
		OracleContractID:    s.OracleContractID,
		LastUpdatedByTxHash: s.LastUpdatedByTxHash,
		LastUpdatedAtLedger: s.LastUpdatedAtLedger,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

func fromSettingsDao(dao *SettingsDao) *Settings {
	return &Settings{
		ID:                  dao.ID,
		FeePercent:          dao.FeePercent,
		ContractID:          dao.ContractID,
		OracleContractID:    dao.OracleContractID,
		LastUpdatedByTxHash: dao.LastUpdatedByTxHash,
		LastUpdatedAtLedger: dao.LastUpdatedAtLedger,
		CreatedAt:           dao.CreatedAt,
		UpdatedAt:           dao.UpdatedAt,
	}
}
