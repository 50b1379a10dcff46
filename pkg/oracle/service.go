package oracle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/oracle-indexer/internal/metrics"
	apperrors "github.com/chainsafe/oracle-indexer/pkg/app/errors"
	"github.com/chainsafe/oracle-indexer/pkg/notify"
)

const (
	defaultReportThreshold = 5
	defaultPendingLimit    = 100
)

// ReportGate runs inside the locked report transaction before the count is
// bumped. A non-nil error aborts the report and rolls back everything the gate
// wrote through ctx.
type ReportGate func(ctx context.Context, c *Call) error

// Config tunes the state machine.
type Config struct {
	// ReportThreshold is the report count at which an OPEN market is paused
	// and hidden.
	ReportThreshold int
	// PendingLimit caps a single PendingCalls batch.
	PendingLimit int
	// Now overrides the clock in tests.
	Now func() time.Time
}

// Service defines the market lifecycle operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	CreateCall(ctx context.Context, req *CreateCallRequest) (*Call, error)
	GetCall(ctx context.Context, id int64) (*Call, error)
	// PendingCalls lists markets due for resolution at now.
	PendingCalls(ctx context.Context, now time.Time) ([]*Call, error)
	OpenCall(ctx context.Context, id int64) (*Call, error)
	// CheckSettlement gates a due market ahead of its price fetch. A paused
	// market is flagged failed and rejected, any other is returned unchanged.
	CheckSettlement(ctx context.Context, id int64) (*Call, error)
	// ResolveMarket settles a market against the observed price.
	ResolveMarket(ctx context.Context, id int64, observed decimal.Decimal) (*Call, error)
	// RecordReport counts one community report, pausing the market when the
	// threshold is reached.
	RecordReport(ctx context.Context, id int64, gate ReportGate) (*Call, error)
	UnpauseCall(ctx context.Context, id int64) (*Call, error)
	// AdminResolveCall forces a terminal outcome. finalPrice is optional.
	AdminResolveCall(ctx context.Context, id int64, resolution Status, finalPrice *decimal.Decimal) (*Call, error)
}

type oracleService struct {
	store     Store
	publisher notify.Publisher
	cfg       Config
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewService creates the market lifecycle service
func NewService(store Store, publisher notify.Publisher, cfg Config, logger *zap.Logger) Service {
	if cfg.ReportThreshold <= 0 {
		cfg.ReportThreshold = defaultReportThreshold
	}
	if cfg.PendingLimit <= 0 {
		cfg.PendingLimit = defaultPendingLimit
	}
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Now().UTC() }
	}
	if publisher == nil {
		publisher = notify.Nop{}
	}
	return &oracleService{
		store:     store,
		publisher: publisher,
		cfg:       cfg,
		validate:  validator.New(),
		logger:    logger,
	}
}

func (s *oracleService) CreateCall(ctx context.Context, req *CreateCallRequest) (*Call, error) {
	if req == nil {
		return nil, apperrors.BadRequestError(nil, "missing request")
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.BadRequestError(fmt.Errorf("%w: %w", ErrInvalidCall, err), "invalid call")
	}
	if !req.StrikePrice.IsPositive() {
		return nil, apperrors.BadRequestError(ErrInvalidCall, "strike price must be positive")
	}

	c := &Call{
		PairAddress: req.PairAddress,
		BaseToken:   req.BaseToken,
		QuoteToken:  req.QuoteToken,
		StrikePrice: req.StrikePrice,
		CallTime:    req.CallTime.UTC(),
		Status:      StatusDraft,
	}
	if req.Open {
		c.Status = StatusOpen
	}
	if err := s.store.Create(ctx, c); err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return c, nil
}

func (s *oracleService) GetCall(ctx context.Context, id int64) (*Call, error) {
	c, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return c, nil
}

func (s *oracleService) PendingCalls(ctx context.Context, now time.Time) ([]*Call, error) {
	calls, err := s.store.Pending(ctx, now, s.cfg.PendingLimit)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	metrics.PendingCalls.Set(float64(len(calls)))
	return calls, nil
}

func (s *oracleService) OpenCall(ctx context.Context, id int64) (*Call, error) {
	c, err := s.store.UpdateCall(ctx, id, func(_ context.Context, c *Call) error {
		if c.Status != StatusDraft {
			return apperrors.BadRequestError(
				fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.Status, StatusOpen),
				fmt.Sprintf("cannot open call in status %s", c.Status),
			)
		}
		c.Status = StatusOpen
		return nil
	})
	if err != nil {
		return nil, mapStoreError(err)
	}
	return c, nil
}

func (s *oracleService) CheckSettlement(ctx context.Context, id int64) (*Call, error) {
	var paused bool
	c, err := s.store.UpdateCall(ctx, id, func(_ context.Context, c *Call) error {
		switch {
		case c.Status == StatusPaused:
			paused = true
			now := s.cfg.Now()
			c.FailedAt = &now
			return nil
		case c.Status == StatusOpen, c.Status == StatusSettling, c.Status.IsTerminal():
			return ErrSkipUpdate
		}
		return apperrors.BadRequestError(
			fmt.Errorf("%w: cannot resolve from %s", ErrInvalidTransition, c.Status),
			fmt.Sprintf("cannot settle call in status %s", c.Status),
		)
	})
	if err != nil {
		return nil, mapStoreError(err)
	}
	if paused {
		return s.pausedResolution(c)
	}
	return c, nil
}

func (s *oracleService) ResolveMarket(ctx context.Context, id int64, observed decimal.Decimal) (*Call, error) {
	var paused, resolved bool
	c, err := s.store.UpdateCall(ctx, id, func(_ context.Context, c *Call) error {
		switch {
		case c.Status == StatusPaused:
			paused = true
			now := s.cfg.Now()
			c.FailedAt = &now
			return nil
		case c.Status.IsTerminal():
			return ErrSkipUpdate
		case c.Status != StatusOpen && c.Status != StatusSettling:
			return apperrors.BadRequestError(
				fmt.Errorf("%w: cannot resolve from %s", ErrInvalidTransition, c.Status),
				fmt.Sprintf("cannot resolve call in status %s", c.Status),
			)
		}

		now := s.cfg.Now()
		price := observed
		c.Status = Outcome(c.StrikePrice, observed)
		c.FinalPrice = &price
		c.ResolvedAt = &now
		c.ProcessedAt = &now
		resolved = true
		return nil
	})
	if err != nil {
		metrics.Resolutions.WithLabelValues("error").Inc()
		return nil, mapStoreError(err)
	}
	if paused {
		return s.pausedResolution(c)
	}
	if !resolved {
		metrics.Resolutions.WithLabelValues("skipped").Inc()
		return c, nil
	}

	metrics.Resolutions.WithLabelValues(outcomeLabel(c.Status)).Inc()
	s.logger.Info("Market resolved",
		zap.Int64("call_id", c.ID),
		zap.String("status", c.Status.String()),
		zap.String("strike_price", c.StrikePrice.String()),
		zap.String("final_price", observed.String()),
	)
	s.publish(ctx, resolvedMessage(c, false))
	return c, nil
}

func (s *oracleService) RecordReport(ctx context.Context, id int64, gate ReportGate) (*Call, error) {
	var paused bool
	c, err := s.store.UpdateCall(ctx, id, func(ctx context.Context, c *Call) error {
		if gate != nil {
			if err := gate(ctx, c); err != nil {
				return err
			}
		}

		c.ReportCount++
		c.IsHidden = c.ReportCount >= s.cfg.ReportThreshold
		if c.Status == StatusOpen && c.ReportCount >= s.cfg.ReportThreshold {
			c.Status = StatusPaused
			paused = true
		}
		return nil
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	if paused {
		metrics.PausedCalls.Inc()
		s.logger.Warn("Market paused by reports",
			zap.Int64("call_id", c.ID),
			zap.Int("report_count", c.ReportCount),
			zap.Int("threshold", s.cfg.ReportThreshold),
		)
		s.publish(ctx, notify.Message{
			Kind:        notify.KindPaused,
			CallID:      c.ID,
			Status:      c.Status.String(),
			ReportCount: c.ReportCount,
			OccurredAt:  s.cfg.Now(),
		})
	}
	return c, nil
}

func (s *oracleService) UnpauseCall(ctx context.Context, id int64) (*Call, error) {
	c, err := s.store.UpdateCall(ctx, id, func(_ context.Context, c *Call) error {
		if c.Status != StatusPaused {
			return apperrors.BadRequestError(
				fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.Status, StatusOpen),
				fmt.Sprintf("call is not paused (current status: %s)", c.Status),
			)
		}
		c.Status = StatusOpen
		c.FailedAt = nil
		return nil
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	s.publish(ctx, notify.Message{
		Kind:        notify.KindUnpaused,
		CallID:      c.ID,
		Status:      c.Status.String(),
		ReportCount: c.ReportCount,
		OccurredAt:  s.cfg.Now(),
	})
	return c, nil
}

func (s *oracleService) AdminResolveCall(
	ctx context.Context,
	id int64,
	resolution Status,
	finalPrice *decimal.Decimal,
) (*Call, error) {
	if !resolution.IsTerminal() {
		return nil, apperrors.BadRequestError(
			fmt.Errorf("%w: %q", ErrInvalidTransition, resolution),
			"resolution must be RESOLVED_YES or RESOLVED_NO",
		)
	}

	c, err := s.store.UpdateCall(ctx, id, func(_ context.Context, c *Call) error {
		switch c.Status {
		case StatusOpen, StatusPaused, StatusSettling:
		default:
			return apperrors.BadRequestError(
				fmt.Errorf("%w: cannot force-resolve from %s", ErrInvalidTransition, c.Status),
				fmt.Sprintf("cannot force-resolve a call with status %s", c.Status),
			)
		}

		now := s.cfg.Now()
		c.Status = resolution
		c.ResolvedAt = &now
		c.ProcessedAt = &now
		c.FailedAt = nil
		if finalPrice != nil {
			price := *finalPrice
			c.FinalPrice = &price
		}
		return nil
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	metrics.Resolutions.WithLabelValues("forced").Inc()
	s.publish(ctx, resolvedMessage(c, true))
	return c, nil
}

func (s *oracleService) pausedResolution(c *Call) (*Call, error) {
	metrics.Resolutions.WithLabelValues("paused").Inc()
	s.logger.Warn("Resolution blocked, market paused",
		zap.Int64("call_id", c.ID),
		zap.Int("report_count", c.ReportCount),
	)
	return nil, apperrors.LockedError(
		fmt.Errorf("%w: call %d", ErrMarketPaused, c.ID),
		"admin review required",
	)
}

// publish runs after the state change committed. Failures only cost the
// notification.
func (s *oracleService) publish(ctx context.Context, msg notify.Message) {
	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.logger.Warn("Failed to publish call notification",
			zap.Int64("call_id", msg.CallID),
			zap.String("kind", string(msg.Kind)),
			zap.Error(err),
		)
	}
}

func resolvedMessage(c *Call, forced bool) notify.Message {
	msg := notify.Message{
		Kind:        notify.KindResolved,
		CallID:      c.ID,
		Status:      c.Status.String(),
		ReportCount: c.ReportCount,
		Forced:      forced,
	}
	if c.ResolvedAt != nil {
		msg.OccurredAt = *c.ResolvedAt
	}
	if c.FinalPrice != nil {
		price := c.FinalPrice.String()
		msg.FinalPrice = &price
	}
	return msg
}

func outcomeLabel(st Status) string {
	if st == StatusResolvedYes {
		return "yes"
	}
	return "no"
}

func mapStoreError(err error) error {
	if errors.Is(err, ErrCallNotFound) {
		return apperrors.ResourceNotFoundError(err, "call not found")
	}
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		return err
	}
	return apperrors.GeneralError(err)
}
