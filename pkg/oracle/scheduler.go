package oracle

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/chainsafe/oracle-indexer/pkg/app/errors"
)

const maxConcurrentPriceFetches = 4

// RunStats summarizes one resolution run.
type RunStats struct {
	Pending  int
	Resolved int
	Blocked  int
	Failed   int
}

// Scheduler periodically resolves due markets.
type Scheduler struct {
	svc      Service
	prices   PriceSource
	schedule string
	now      func() time.Time
	logger   *zap.Logger

	mu   sync.Mutex
	cron *cron.Cron
}

// NewScheduler creates a scheduler running on the cron schedule (for example
// "@every 30s").
func NewScheduler(svc Service, prices PriceSource, schedule string, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		svc:      svc,
		prices:   prices,
		schedule: schedule,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger,
	}
}

// Start schedules RunOnce. Overlapping runs are skipped.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return nil
	}

	cl := cronLogger{s.logger.Sugar()}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	if _, err := c.AddFunc(s.schedule, func() {
		if _, err := s.RunOnce(ctx); err != nil {
			s.logger.Error("Resolution run failed", zap.Error(err))
		}
	}); err != nil {
		return err
	}

	c.Start()
	s.cron = c
	s.logger.Info("Resolution scheduler started", zap.String("schedule", s.schedule))
	return nil
}

// Stop halts scheduling and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()
	if c == nil {
		return
	}
	<-c.Stop().Done()
	s.logger.Info("Resolution scheduler stopped")
}

// RunOnce resolves every due market once. Errors of a single market are
// logged and counted, they never abort the run.
func (s *Scheduler) RunOnce(ctx context.Context) (RunStats, error) {
	var stats RunStats
	pending, err := s.svc.PendingCalls(ctx, s.now())
	if err != nil {
		return stats, err
	}
	stats.Pending = len(pending)
	if len(pending) == 0 {
		return stats, nil
	}

	// A paused market is rejected before its asset is priced. The rest keep
	// their status until ResolveMarket commits, so a failed fetch leaves them
	// open to reports.
	due := make([]*Call, 0, len(pending))
	for _, c := range pending {
		checked, err := s.svc.CheckSettlement(ctx, c.ID)
		if err != nil {
			s.countFailure(&stats, c, err)
			continue
		}
		if checked.Status.IsTerminal() {
			continue
		}
		due = append(due, checked)
	}

	prices := s.fetchPrices(ctx, due)
	for _, c := range due {
		price, ok := prices[c.BaseToken]
		if !ok {
			stats.Failed++
			continue
		}
		if _, err := s.svc.ResolveMarket(ctx, c.ID, price); err != nil {
			s.countFailure(&stats, c, err)
			continue
		}
		stats.Resolved++
	}

	s.logger.Info("Resolution run completed",
		zap.Int("pending", stats.Pending),
		zap.Int("resolved", stats.Resolved),
		zap.Int("blocked", stats.Blocked),
		zap.Int("failed", stats.Failed),
	)
	return stats, nil
}

// fetchPrices prices each distinct base token once per run. Assets whose
// fetch failed are missing from the result.
func (s *Scheduler) fetchPrices(ctx context.Context, calls []*Call) map[string]decimal.Decimal {
	var (
		mu     sync.Mutex
		prices = make(map[string]decimal.Decimal)
		seen   = make(map[string]struct{})
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPriceFetches)
	for _, c := range calls {
		asset := c.BaseToken
		if _, dup := seen[asset]; dup {
			continue
		}
		seen[asset] = struct{}{}

		g.Go(func() error {
			price, err := s.prices.Price(gctx, asset)
			if err != nil {
				s.logger.Warn("Failed to fetch oracle price",
					zap.String("asset", asset),
					zap.Error(err),
				)
				return nil
			}
			mu.Lock()
			prices[asset] = price
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return prices
}

func (s *Scheduler) countFailure(stats *RunStats, c *Call, err error) {
	if apperrors.Is(err, apperrors.CategoryLocked) {
		stats.Blocked++
		return
	}
	stats.Failed++
	s.logger.Warn("Failed to resolve market",
		zap.Int64("call_id", c.ID),
		zap.String("status", c.Status.String()),
		zap.Error(err),
	)
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	l *zap.SugaredLogger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debugw(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Errorw(msg, append(keysAndValues, "error", err)...)
}
