package indexer

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/chainsafe/oracle-indexer/pkg/app/errors"
	"github.com/chainsafe/oracle-indexer/pkg/eventlog"
	"github.com/chainsafe/oracle-indexer/pkg/events"
)

const (
	DefaultEventsLimit = 50
	MaxEventsLimit     = 500
)

// Status is the indexer health summary.
type Status struct {
	IsRunning            bool       `json:"isRunning"`
	LastProcessedLedger  *int64     `json:"lastProcessedLedger"`
	TotalEventsIndexed   int64      `json:"totalEventsIndexed"`
	LatestEventLedger    *int64     `json:"latestEventLedger"`
	LatestEventTimestamp *time.Time `json:"latestEventTimestamp"`
}

// Service defines the indexer read operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Status(ctx context.Context) (*Status, error)
	// EventsByType returns the newest records of typ. limit <= 0 selects the
	// default; larger values are capped.
	EventsByType(ctx context.Context, typ string, limit int) ([]*eventlog.Record, error)
}

// RunState reports whether polling is active. *Engine implements it.
type RunState interface {
	IsRunning() bool
}

type indexerService struct {
	log        eventlog.Store
	contractID string
	state      RunState
}

// NewService creates the indexer read service
func NewService(log eventlog.Store, contractID string, state RunState) Service {
	return &indexerService{
		log:        log,
		contractID: contractID,
		state:      state,
	}
}

func (s *indexerService) Status(ctx context.Context) (*Status, error) {
	st := &Status{IsRunning: s.state != nil && s.state.IsRunning()}

	cursor, ok, err := s.log.Cursor(ctx, s.contractID)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	if !ok {
		cursor, ok, err = s.log.MaxLedger(ctx, s.contractID)
		if err != nil {
			return nil, apperrors.GeneralError(err)
		}
	}
	if ok {
		st.LastProcessedLedger = &cursor
	}

	total, err := s.log.Count(ctx)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	st.TotalEventsIndexed = total

	latest, err := s.log.Latest(ctx)
	switch {
	case errors.Is(err, eventlog.ErrRecordNotFound):
	case err != nil:
		return nil, apperrors.GeneralError(err)
	default:
		ledger, closedAt := latest.Ledger, latest.LedgerClosedAt
		st.LatestEventLedger = &ledger
		st.LatestEventTimestamp = &closedAt
	}
	return st, nil
}

func (s *indexerService) EventsByType(ctx context.Context, typ string, limit int) ([]*eventlog.Record, error) {
	t, ok := events.ParseType(typ)
	if !ok {
		return nil, apperrors.BadRequestError(events.ErrUnknownEvent, "unknown event type "+typ)
	}
	switch {
	case limit <= 0:
		limit = DefaultEventsLimit
	case limit > MaxEventsLimit:
		limit = MaxEventsLimit
	}

	records, err := s.log.ListByType(ctx, t, limit)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return records, nil
}
