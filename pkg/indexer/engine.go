package indexer

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Ticker runs one indexing pass. *Dispatcher implements it.
type Ticker interface {
	Tick(ctx context.Context) (TickResult, error)
}

// Engine drives a Ticker on a fixed interval.
type Engine struct {
	ticker   Ticker
	interval time.Duration
	logger   *zap.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewEngine creates a polling engine
func NewEngine(ticker Ticker, interval time.Duration, logger *zap.Logger) *Engine {
	return &Engine{
		ticker:   ticker,
		interval: interval,
		logger:   logger,
	}
}

// Start runs a first tick immediately and then one per interval until ctx is
// done or Stop is called.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return errors.New("indexer engine already running")
	}

	ctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.running = true

	e.wg.Add(1)
	go e.poll(ctx)

	e.logger.Info("Indexer engine started", zap.Duration("interval", e.interval))
	return nil
}

// Stop cancels polling and waits for the tick in progress. A cancelled tick
// rolls back its open ledger batch, so the cursor never moves past it.
func (e *Engine) Stop() {
	e.mu.Lock()
	cancel := e.cancel
	e.cancel = nil
	e.mu.Unlock()
	if cancel == nil {
		return
	}

	e.logger.Info("Stopping indexer engine")
	cancel()
	e.wg.Wait()
	e.logger.Info("Indexer engine stopped")
}

// IsRunning reports whether the polling loop is active.
func (e *Engine) IsRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

func (e *Engine) poll(ctx context.Context) {
	defer e.wg.Done()
	defer func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
	}()

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		// failures are logged by the dispatcher and retried next interval
		_, _ = e.ticker.Tick(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
