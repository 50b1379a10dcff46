// Package oracle owns the lifecycle of price markets: creation, automatic
// resolution against an oracle price, the report driven pause and the admin
// overrides.
package oracle

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a market.
type Status string

const (
	StatusDraft       Status = "DRAFT"
	StatusOpen        Status = "OPEN"
	StatusPaused      Status = "PAUSED"
	StatusSettling    Status = "SETTLING"
	StatusResolvedYes Status = "RESOLVED_YES"
	StatusResolvedNo  Status = "RESOLVED_NO"
)

func (s Status) String() string { return string(s) }

// IsTerminal reports whether s is a resolved state.
func (s Status) IsTerminal() bool {
	return s == StatusResolvedYes || s == StatusResolvedNo
}

// ParseStatus returns the Status named s.
func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusDraft, StatusOpen, StatusPaused, StatusSettling, StatusResolvedYes, StatusResolvedNo:
		return st, true
	}
	return "", false
}

var (
	ErrCallNotFound = errors.New("call not found")
	// ErrMarketPaused is returned when resolution is attempted on a market
	// held by the report circuit breaker.
	ErrMarketPaused      = errors.New("market paused")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidCall       = errors.New("invalid call")
)

// Call is one resolvable price market.
type Call struct {
	ID          int64            `json:"id"`
	PairAddress string           `json:"pairAddress"`
	BaseToken   string           `json:"baseToken"`
	QuoteToken  string           `json:"quoteToken"`
	StrikePrice decimal.Decimal  `json:"strikePrice"`
	CallTime    time.Time        `json:"callTime"`
	Status      Status           `json:"status"`
	ReportCount int              `json:"reportCount"`
	IsHidden    bool             `json:"isHidden"`
	ProcessedAt *time.Time       `json:"processedAt"`
	FailedAt    *time.Time       `json:"failedAt"`
	ResolvedAt  *time.Time       `json:"resolvedAt"`
	FinalPrice  *decimal.Decimal `json:"finalPrice"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// CreateCallRequest describes a new market.
type CreateCallRequest struct {
	PairAddress string          `json:"pairAddress" validate:"required,max=64"`
	BaseToken   string          `json:"baseToken" validate:"required,max=32"`
	QuoteToken  string          `json:"quoteToken" validate:"required,max=32"`
	StrikePrice decimal.Decimal `json:"strikePrice"`
	CallTime    time.Time       `json:"callTime" validate:"required"`
	// Open publishes the market immediately instead of leaving it in DRAFT.
	Open bool `json:"open"`
}

// Outcome evaluates observed against the strike. A price equal to the strike
// resolves YES.
func Outcome(strike, observed decimal.Decimal) Status {
	if observed.GreaterThanOrEqual(strike) {
		return StatusResolvedYes
	}
	return StatusResolvedNo
}
