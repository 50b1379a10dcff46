// Package eventlog persists decoded ledger events and the per-contract ledger
// cursor. The log is append-only.
package eventlog

import (
	"context"
	"errors"
	"time"

	"github.com/chainsafe/oracle-indexer/pkg/events"
)

// ErrRecordNotFound is returned when the log holds no matching record.
var ErrRecordNotFound = errors.New("event log record not found")

// Record is one indexed event.
type Record struct {
	ID             int64          `json:"id"`
	EventID        string         `json:"eventId"`
	PagingToken    string         `json:"pagingToken"`
	ContractID     string         `json:"contractId"`
	EventType      events.Type    `json:"eventType"`
	Ledger         int64          `json:"ledger"`
	TxHash         string         `json:"txHash"`
	TxOrder        int            `json:"txOrder"`
	Payload        map[string]any `json:"payload"`
	LedgerClosedAt time.Time      `json:"ledgerClosedAt"`
	IndexedAt      time.Time      `json:"indexedAt"`
}

// FromEvent builds the log record of ev.
func FromEvent(ev *events.Event) *Record {
	return &Record{
		EventID:        ev.ID,
		PagingToken:    ev.PagingToken,
		ContractID:     ev.ContractID,
		EventType:      ev.Type,
		Ledger:         ev.Ledger,
		TxHash:         ev.TxHash,
		TxOrder:        ev.TxOrder,
		Payload:        ev.Payload,
		LedgerClosedAt: ev.LedgerClosedAt,
	}
}

// Store is the event log persistence.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	// Append inserts rec. It reports false, without error, when a record
	// with the same EventID already exists.
	Append(ctx context.Context, rec *Record) (bool, error)
	Exists(ctx context.Context, eventID string) (bool, error)
	// MaxLedger returns the highest ledger recorded for contractID, and false
	// when nothing was recorded yet.
	MaxLedger(ctx context.Context, contractID string) (int64, bool, error)
	// Cursor returns the last fully handled ledger of contractID, and false
	// when no cursor was saved yet.
	Cursor(ctx context.Context, contractID string) (int64, bool, error)
	// SetCursor moves the cursor of contractID forward to ledger. A lower
	// value leaves it unchanged.
	SetCursor(ctx context.Context, contractID string, ledger int64) error
	Count(ctx context.Context) (int64, error)
	// Latest returns the record with the highest ledger.
	Latest(ctx context.Context) (*Record, error)
	// ListByType returns the newest records of typ, newest first.
	ListByType(ctx context.Context, typ events.Type, limit int) ([]*Record, error)
	// InTx runs fn in one transaction carried by the ctx passed to fn.
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
