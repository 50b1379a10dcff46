package oracle

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// CallDao maps to the 'oracle_calls' table.
type CallDao struct {
	bun.BaseModel `bun:"table:oracle_calls,alias:oc"`
	ID            int64               `bun:"id,pk,autoincrement"`
	PairAddress   string              `bun:"pair_address,notnull,type:varchar(64)"`
	BaseToken     string              `bun:"base_token,notnull,type:varchar(32)"`
	QuoteToken    string              `bun:"quote_token,notnull,type:varchar(32)"`
	StrikePrice   decimal.Decimal     `bun:"strike_price,notnull,type:numeric(20,8)"`
	CallTime      time.Time           `bun:"call_time,notnull"`
	Status        string              `bun:"status,notnull,type:varchar(16),default:'DRAFT'"`
	ReportCount   int                 `bun:"report_count,notnull,default:0"`
	IsHidden      bool                `bun:"is_hidden,notnull,default:false"`
	ProcessedAt   *time.Time          `bun:"processed_at"`
	FailedAt      *time.Time          `bun:"failed_at"`
	ResolvedAt    *time.Time          `bun:"resolved_at"`
	FinalPrice    decimal.NullDecimal `bun:"final_price,type:numeric(20,8)"`
	CreatedAt     time.Time           `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time           `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toCallDao(c *Call) *CallDao {
	dao := &CallDao{
		ID:          c.ID,
		PairAddress: c.PairAddress,
		BaseToken:   c.BaseToken,
		QuoteToken:  c.QuoteToken,
		StrikePrice: c.StrikePrice,
		CallTime:    c.CallTime,
		Status:      c.Status.String(),
		ReportCount: c.ReportCount,
		IsHidden:    c.IsHidden,
		ProcessedAt: c.ProcessedAt,
		FailedAt:    c.FailedAt,
		ResolvedAt:  c.ResolvedAt,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.FinalPrice != nil {
		dao.FinalPrice = decimal.NewNullDecimal(*c.FinalPrice)
	}
	return dao
}

func fromCallDao(dao *CallDao) *Call {
	c := &Call{
		ID:          dao.ID,
		PairAddress: dao.PairAddress,
		BaseToken:   dao.BaseToken,
		QuoteToken:  dao.QuoteToken,
		StrikePrice: dao.StrikePrice,
		CallTime:    dao.CallTime,
		Status:      Status(dao.Status),
		ReportCount: dao.ReportCount,
		IsHidden:    dao.IsHidden,
		ProcessedAt: dao.ProcessedAt,
		FailedAt:    dao.FailedAt,
		ResolvedAt:  dao.ResolvedAt,
		CreatedAt:   dao.CreatedAt,
		UpdatedAt:   dao.UpdatedAt,
	}
	if dao.FinalPrice.Valid {
		price := dao.FinalPrice.Decimal
		c.FinalPrice = &price
	}
	return c
}
