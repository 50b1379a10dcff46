// Package indexer polls contract events from the ledger, applies them to
// their projectors and records them in the event log.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/chainsafe/oracle-indexer/internal/metrics"
	apperrors "github.com/chainsafe/oracle-indexer/pkg/app/errors"
	"github.com/chainsafe/oracle-indexer/pkg/eventlog"
	"github.com/chainsafe/oracle-indexer/pkg/events"
	"github.com/chainsafe/oracle-indexer/pkg/ledger"
)

const defaultRewind = 5

// EventSource is the part of the ledger gateway the dispatcher reads from.
//
//go:generate mockery --name EventSource --output mocks --outpkg mocks --filename mock_event_source.go --with-expecter
type EventSource interface {
	FetchEvents(ctx context.Context, contractID string, startLedger int64) (*ledger.EventPage, error)
	LatestLedger(ctx context.Context) (int64, error)
}

// Projector applies decoded events of the types it names to a read model.
// Project runs inside the transaction that records the event, so it must
// issue its writes through ctx. A data error (apperrors.CategoryDataError)
// rejects the event without failing the tick.
//
//go:generate mockery --name Projector --output mocks --outpkg mocks --filename mock_projector.go --with-expecter
type Projector interface {
	Types() []events.Type
	Project(ctx context.Context, ev *events.Event) error
}

// TickResult summarizes one dispatcher tick.
type TickResult struct {
	StartLedger int64 `json:"startLedger"`
	LastLedger  int64 `json:"lastLedger"`
	Fetched     int   `json:"fetched"`
	Applied     int   `json:"applied"`
	Skipped     int   `json:"skipped"`
	Duplicates  int   `json:"duplicates"`
}

// Dispatcher advances the cursor of one contract.
type Dispatcher struct {
	source     EventSource
	log        eventlog.Store
	contractID string
	rewind     int64
	projectors map[events.Type]Projector
	logger     *zap.Logger

	flight singleflight.Group
}

// NewDispatcher creates a dispatcher for contractID. rewind is how far behind
// the latest ledger an empty log starts.
func NewDispatcher(
	source EventSource,
	log eventlog.Store,
	contractID string,
	rewind int64,
	logger *zap.Logger,
	projectors ...Projector,
) *Dispatcher {
	if rewind < 0 {
		rewind = defaultRewind
	}
	d := &Dispatcher{
		source:     source,
		log:        log,
		contractID: contractID,
		rewind:     rewind,
		projectors: make(map[events.Type]Projector),
		logger:     logger.With(zap.String("contract_id", contractID)),
	}
	for _, p := range projectors {
		for _, typ := range p.Types() {
			d.projectors[typ] = p
		}
	}
	return d
}

// ContractID returns the contract this dispatcher follows.
func (d *Dispatcher) ContractID() string { return d.contractID }

// Tick runs one polling pass. Concurrent callers share the pass already in
// flight instead of starting a second one.
func (d *Dispatcher) Tick(ctx context.Context) (TickResult, error) {
	v, err, shared := d.flight.Do(d.contractID, func() (any, error) {
		return d.tick(ctx)
	})
	if shared {
		d.logger.Debug("Joined in-flight tick")
	}
	res, _ := v.(TickResult)
	return res, err
}

func (d *Dispatcher) tick(ctx context.Context) (TickResult, error) {
	start := time.Now()
	defer func() {
		metrics.TickDuration.WithLabelValues(d.contractID).Observe(time.Since(start).Seconds())
	}()

	res, err := d.run(ctx)
	if err != nil {
		metrics.TicksTotal.WithLabelValues(d.contractID, "error").Inc()
		d.logger.Error("Indexer tick failed",
			zap.Int64("start_ledger", res.StartLedger),
			zap.Int("applied", res.Applied),
			zap.Error(err),
		)
		return res, err
	}

	metrics.TicksTotal.WithLabelValues(d.contractID, "ok").Inc()
	if res.LastLedger > 0 {
		metrics.CursorLedger.WithLabelValues(d.contractID).Set(float64(res.LastLedger))
	}
	if res.Fetched > 0 {
		d.logger.Info("Indexer tick completed",
			zap.Int64("start_ledger", res.StartLedger),
			zap.Int64("last_ledger", res.LastLedger),
			zap.Int("fetched", res.Fetched),
			zap.Int("applied", res.Applied),
			zap.Int("skipped", res.Skipped),
			zap.Int("duplicates", res.Duplicates),
		)
	}
	return res, nil
}

func (d *Dispatcher) run(ctx context.Context) (TickResult, error) {
	var res TickResult

	latest, err := d.source.LatestLedger(ctx)
	if err != nil {
		return res, fmt.Errorf("get latest ledger: %w", err)
	}
	metrics.LatestLedger.Set(float64(latest))

	startLedger, err := d.startLedger(ctx, latest)
	if err != nil {
		return res, err
	}
	res.StartLedger = startLedger
	if startLedger > latest {
		return res, nil
	}

	page, err := d.source.FetchEvents(ctx, d.contractID, startLedger)
	if err != nil {
		return res, fmt.Errorf("fetch events from ledger %d: %w", startLedger, err)
	}
	res.Fetched = len(page.Events)

	batches := groupByLedger(page.Events)
	if page.Truncated {
		if len(batches) > 1 {
			// the last ledger may be cut short; it is fetched again next tick
			batches = batches[:len(batches)-1]
		} else if len(batches) == 1 {
			d.logger.Warn("Single ledger exceeds the getEvents page cap; its remaining events are not indexed",
				zap.Int64("ledger", batches[0][0].Ledger),
				zap.Int("fetched", len(batches[0])),
			)
		}
	}

	// Events of one ledger and the cursor move commit together, so the
	// cursor never points into a partially applied ledger.
	for _, batch := range batches {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		ledgerSeq := batch[0].Ledger
		var batchRes TickResult
		err := d.log.InTx(ctx, func(ctx context.Context) error {
			batchRes = TickResult{}
			for i := range batch {
				if err := d.apply(ctx, &batch[i], &batchRes); err != nil {
					return err
				}
			}
			return d.log.SetCursor(ctx, d.contractID, ledgerSeq)
		})
		if err != nil {
			return res, fmt.Errorf("apply ledger %d: %w", ledgerSeq, err)
		}
		res.Applied += batchRes.Applied
		res.Skipped += batchRes.Skipped
		res.Duplicates += batchRes.Duplicates
		res.LastLedger = ledgerSeq
	}

	// A complete scan saw every event of the contract up to the node's latest
	// ledger, so ledgers without events are handled too.
	if !page.Truncated && page.LatestLedger > res.LastLedger && page.LatestLedger >= startLedger {
		if err := d.log.SetCursor(ctx, d.contractID, page.LatestLedger); err != nil {
			return res, fmt.Errorf("advance cursor to ledger %d: %w", page.LatestLedger, err)
		}
		res.LastLedger = page.LatestLedger
	}
	return res, nil
}

// startLedger resumes after the saved cursor. Logs written before a cursor
// existed resume after their highest ledger; an empty log rewinds from the
// node's latest ledger.
func (d *Dispatcher) startLedger(ctx context.Context, latest int64) (int64, error) {
	cursor, ok, err := d.log.Cursor(ctx, d.contractID)
	if err != nil {
		return 0, fmt.Errorf("load cursor: %w", err)
	}
	if ok {
		return cursor + 1, nil
	}

	maxLedger, ok, err := d.log.MaxLedger(ctx, d.contractID)
	if err != nil {
		return 0, fmt.Errorf("load max logged ledger: %w", err)
	}
	if ok {
		return maxLedger + 1, nil
	}
	return max(latest-d.rewind, 1), nil
}

// apply decodes, projects and logs one event. Only infrastructure errors are
// returned; anything wrong with the event itself is counted and skipped.
func (d *Dispatcher) apply(ctx context.Context, raw *ledger.Event, res *TickResult) error {
	ev, err := events.Decode(*raw)
	if err != nil {
		reason := "malformed"
		if errors.Is(err, events.ErrUnknownEvent) {
			reason = "unknown"
			d.logger.Debug("Skipping unknown event", zap.String("event_id", raw.ID), zap.Error(err))
		} else {
			d.logger.Warn("Skipping malformed event",
				zap.String("event_id", raw.ID),
				zap.Int64("ledger", raw.Ledger),
				zap.Error(err),
			)
		}
		metrics.EventsSkipped.WithLabelValues(reason).Inc()
		res.Skipped++
		return nil
	}

	exists, err := d.log.Exists(ctx, ev.ID)
	if err != nil {
		return err
	}
	if exists {
		metrics.EventsSkipped.WithLabelValues("duplicate").Inc()
		res.Duplicates++
		return nil
	}

	if p, ok := d.projectors[ev.Type]; ok {
		if err := p.Project(ctx, ev); err != nil {
			if !apperrors.Is(err, apperrors.CategoryDataError) {
				return fmt.Errorf("project %s %s: %w", ev.Type, ev.ID, err)
			}
			d.logger.Warn("Projector rejected event",
				zap.String("event_id", ev.ID),
				zap.String("event_type", ev.Type.String()),
				zap.Error(err),
			)
			metrics.EventsSkipped.WithLabelValues("rejected").Inc()
			res.Skipped++
			return nil
		}
	}

	inserted, err := d.log.Append(ctx, eventlog.FromEvent(ev))
	if err != nil {
		return err
	}
	if !inserted {
		res.Duplicates++
		return nil
	}
	metrics.EventsIndexed.WithLabelValues(ev.Type.String()).Inc()
	res.Applied++
	return nil
}

// groupByLedger splits events into runs of the same ledger, keeping delivery
// order.
func groupByLedger(raw []ledger.Event) [][]ledger.Event {
	var out [][]ledger.Event
	for i := 0; i < len(raw); {
		j := i + 1
		for j < len(raw) && raw[j].Ledger == raw[i].Ledger {
			j++
		}
		out = append(out, raw[i:j])
		i = j
	}
	return out
}
