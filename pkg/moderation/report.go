// Package moderation accepts community reports against markets and feeds
// them into the report circuit breaker of the oracle state machine.
package moderation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/chainsafe/oracle-indexer/pkg/oracle"
)

// maxReasonLength bounds the free text attached to a report.
const maxReasonLength = 500

var (
	ErrDuplicateReport = errors.New("duplicate report")
	ErrCallResolved    = errors.New("call already resolved")
	ErrInvalidReporter = errors.New("invalid reporter address")
)

// Report is one accepted community report.
type Report struct {
	ID              uuid.UUID `json:"id"`
	CallID          int64     `json:"callId"`
	ReporterAddress string    `json:"reporterAddress"`
	Reason          string    `json:"reason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ReportRequest is the body of POST /calls/{id}/report.
type ReportRequest struct {
	CallID          int64  `json:"-"`
	ReporterAddress string `json:"reporterAddress" validate:"required"`
	Reason          string `json:"reason"`
}

// ReportResult reflects the market right after the report was counted.
type ReportResult struct {
	ReportCount int           `json:"reportCount"`
	IsHidden    bool          `json:"isHidden"`
	Status      oracle.Status `json:"status"`
}

// Store defines report persistence. Every method joins the transaction
// carried by ctx.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	Exists(ctx context.Context, callID int64, reporter string) (bool, error)
	// Create returns ErrDuplicateReport when (call, reporter) already exists.
	Create(ctx context.Context, r *Report) error
	ListByCall(ctx context.Context, callID int64) ([]*Report, error)
}
