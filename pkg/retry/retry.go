// Package retry wraps fallible remote calls with bounded exponential backoff.
//
// The wait before attempt n+1 is base*2^(n-1) with no jitter, so the default
// policy (4 attempts, 1s base) waits 1s, 2s and 4s before giving up.
package retry

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/chainsafe/oracle-indexer/internal/metrics"
)

const (
	DefaultMaxAttempts = 4
	DefaultBaseDelay   = time.Second
)

// Policy describes how many times an operation is attempted and how long to
// wait between attempts. The zero value is not usable; build one with New.
type Policy struct {
	maxAttempts int
	baseDelay   time.Duration
	logger      *zap.Logger
	timer       backoff.Timer
}

// Option configures a Policy.
type Option func(*Policy)

// WithLogger sets the logger used for retry and give-up entries.
func WithLogger(l *zap.Logger) Option {
	return func(p *Policy) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithTimer replaces the timer used to wait between attempts.
func WithTimer(t backoff.Timer) Option {
	return func(p *Policy) {
		p.timer = t
	}
}

// New returns a Policy. Non-positive values fall back to the defaults.
func New(maxAttempts int, baseDelay time.Duration, opts ...Option) Policy {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if baseDelay <= 0 {
		baseDelay = DefaultBaseDelay
	}
	p := Policy{
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// MaxAttempts returns the configured attempt budget.
func (p Policy) MaxAttempts() int { return p.maxAttempts }

// Delay returns the wait that precedes attempt+1.
func (p Policy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return time.Duration(float64(p.baseDelay) * math.Pow(2, float64(attempt-1)))
}

func (p Policy) backOff(ctx context.Context) backoff.BackOff {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     p.baseDelay,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         p.Delay(p.maxAttempts),
		MaxElapsedTime:      0,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
	b.Reset()
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(p.maxAttempts-1)), ctx)
}

// Error is returned once every attempt has failed. It unwraps to the last
// failure so callers can still branch on it with errors.Is / errors.As.
type Error struct {
	Label    string
	Attempts int
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s failed after %d attempt(s): %v", e.Label, e.Attempts, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Permanent marks err as structural. Do returns it immediately without
// consuming the remaining attempts.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return backoff.Permanent(err)
}

// Do runs op until it succeeds, returns a permanent error, ctx is done or
// the attempt budget is spent.
func Do[T any](ctx context.Context, p Policy, label string, op func(ctx context.Context) (T, error)) (T, error) {
	if p.maxAttempts == 0 {
		p = New(0, 0)
	}

	attempts := 0
	operation := func() (T, error) {
		attempts++
		return op(ctx)
	}

	notify := func(err error, next time.Duration) {
		metrics.RPCRetries.WithLabelValues(operationName(label)).Inc()
		p.logger.Warn("Retrying operation",
			zap.String("label", label),
			zap.Int("attempt", attempts),
			zap.Int("max_attempts", p.maxAttempts),
			zap.Duration("delay", next),
			zap.Error(err),
		)
	}

	var (
		res T
		err error
	)
	if p.timer != nil {
		res, err = backoff.RetryNotifyWithTimerAndData(operation, p.backOff(ctx), notify, p.timer)
	} else {
		res, err = backoff.RetryNotifyWithData(operation, p.backOff(ctx), notify)
	}
	if err == nil {
		return res, nil
	}

	metrics.RPCFailures.WithLabelValues(operationName(label)).Inc()
	p.logger.Error("Operation failed",
		zap.String("label", label),
		zap.Int("attempts", attempts),
		zap.Error(err),
	)
	return res, &Error{Label: label, Attempts: attempts, Err: err}
}

// Run is Do for operations without a result.
func Run(ctx context.Context, p Policy, label string, op func(ctx context.Context) error) error {
	_, err := Do(ctx, p, label, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// operationName strips the argument part of a label, "fetchEvents(C...)"
// becomes "fetchEvents", to keep metric cardinality bounded.
func operationName(label string) string {
	if i := strings.IndexByte(label, '('); i > 0 {
		return label[:i]
	}
	return label
}
