// Package health checks the indexer's dependencies and publishes the result
// through the gRPC health protocol and the HTTP readiness endpoint.
package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/chainsafe/oracle-indexer/internal/metrics"
	apphttp "github.com/chainsafe/oracle-indexer/pkg/app/http"
	"github.com/chainsafe/oracle-indexer/pkg/ledger"
)

const (
	defaultInterval     = 15 * time.Second
	defaultCheckTimeout = 5 * time.Second

	statusOK = "ok"
)

// ErrNotChecked is reported for a check that has not run yet.
var ErrNotChecked = errors.New("not checked yet")

// Check tests one dependency and returns nil when it is usable.
type Check func(ctx context.Context) error

// Report is the outcome of the last round of checks.
type Report struct {
	Healthy bool              `json:"healthy"`
	Checks  map[string]string `json:"checks"`
}

type namedCheck struct {
	name  string
	check Check
}

// Checker runs registered checks on an interval and mirrors their result
// into a gRPC health server. The overall service ("") is SERVING only when
// every check passes; each check is also exposed under its own name.
type Checker struct {
	server   *grpchealth.Server
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger

	mu      sync.RWMutex
	checks  []namedCheck
	results map[string]error

	runMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewChecker creates a Checker. Until the first round completes every
// service reports NOT_SERVING.
func NewChecker(interval time.Duration, logger *zap.Logger) *Checker {
	if interval <= 0 {
		interval = defaultInterval
	}
	c := &Checker{
		server:   grpchealth.NewServer(),
		interval: interval,
		timeout:  defaultCheckTimeout,
		logger:   logger,
		results:  make(map[string]error),
	}
	c.server.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	return c
}

// Register adds a named check.
func (c *Checker) Register(name string, check Check) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks = append(c.checks, namedCheck{name: name, check: check})
	c.results[name] = ErrNotChecked
	c.server.SetServingStatus(name, healthpb.HealthCheckResponse_NOT_SERVING)
}

// Server returns the gRPC health service backed by this checker.
func (c *Checker) Server() healthpb.HealthServer {
	return c.server
}

// CheckNow runs every check once and publishes the results.
func (c *Checker) CheckNow(ctx context.Context) Report {
	c.mu.RLock()
	checks := append([]namedCheck(nil), c.checks...)
	c.mu.RUnlock()

	results := make(map[string]error, len(checks))
	for _, nc := range checks {
		checkCtx, cancel := context.WithTimeout(ctx, c.timeout)
		results[nc.name] = nc.check(checkCtx)
		cancel()
	}

	c.mu.Lock()
	for name, err := range results {
		prev := c.results[name]
		c.results[name] = err
		if (prev == nil) != (err == nil) {
			if err != nil {
				c.logger.Warn("Dependency unhealthy", zap.String("check", name), zap.Error(err))
			} else {
				c.logger.Info("Dependency healthy", zap.String("check", name))
			}
		}
	}
	report := c.reportLocked()
	c.mu.Unlock()

	for name, err := range results {
		c.server.SetServingStatus(name, servingStatus(err == nil))
		up := 0.0
		if err == nil {
			up = 1
		}
		metrics.DependencyUp.WithLabelValues(name).Set(up)
	}
	c.server.SetServingStatus("", servingStatus(report.Healthy))
	return report
}

// Report returns the results of the last round without running checks.
func (c *Checker) Report() Report {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.reportLocked()
}

func (c *Checker) reportLocked() Report {
	r := Report{Healthy: true, Checks: make(map[string]string, len(c.results))}
	for name, err := range c.results {
		if err != nil {
			r.Healthy = false
			r.Checks[name] = err.Error()
			continue
		}
		r.Checks[name] = statusOK
	}
	return r
}

// Start runs a first round immediately and then one per interval until ctx
// is done or Stop is called. Calling Start on a running checker is a no-op.
func (c *Checker) Start(ctx context.Context) {
	c.runMu.Lock()
	defer c.runMu.Unlock()
	if c.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			c.CheckNow(ctx)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// Stop halts the check loop and marks every service NOT_SERVING.
func (c *Checker) Stop() {
	c.runMu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.runMu.Unlock()
	if cancel != nil {
		cancel()
		c.wg.Wait()
	}
	c.server.Shutdown()
}

// ReadyHandler serves the last report: 200 when healthy, 503 otherwise.
func (c *Checker) ReadyHandler(w http.ResponseWriter, _ *http.Request) {
	report := c.Report()
	status := http.StatusOK
	if !report.Healthy {
		status = http.StatusServiceUnavailable
	}
	apphttp.WriteJSON(w, status, report)
}

func servingStatus(ok bool) healthpb.HealthCheckResponse_ServingStatus {
	if ok {
		return healthpb.HealthCheckResponse_SERVING
	}
	return healthpb.HealthCheckResponse_NOT_SERVING
}

// LedgerHealthSource is the part of the ledger gateway used by LedgerCheck.
type LedgerHealthSource interface {
	Health(ctx context.Context) (*ledger.Health, error)
}

// LedgerCheck passes when the RPC node answers getHealth with "healthy".
func LedgerCheck(p LedgerHealthSource) Check {
	return func(ctx context.Context) error {
		h, err := p.Health(ctx)
		if err != nil {
			return err
		}
		if h.Status != ledger.HealthStatusHealthy {
			return fmt.Errorf("rpc node status %q", h.Status)
		}
		return nil
	}
}

// Pinger is satisfied by *bun.DB and *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// DBCheck passes when the database answers a ping.
func DBCheck(db Pinger) Check {
	return func(ctx context.Context) error {
		return db.PingContext(ctx)
	}
}
