package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// fakeTimer fires immediately and records every requested wait.
type fakeTimer struct {
	waits []time.Duration
	c     chan time.Time
}

func newFakeTimer() *fakeTimer {
	return &fakeTimer{c: make(chan time.Time, 1)}
}

func (f *fakeTimer) Start(d time.Duration) {
	f.waits = append(f.waits, d)
	f.c <- time.Now()
}

func (f *fakeTimer) Stop() {}

func (f *fakeTimer) C() <-chan time.Time { return f.c }

var errTransient = errors.New("connection reset")

func TestDo_SucceedsAfterRetries(t *testing.T) {
	timer := newFakeTimer()
	p := New(4, time.Second, WithTimer(timer))

	calls := 0
	got, err := Do(context.Background(), p, "getLatestLedger", func(context.Context) (int64, error) {
		calls++
		if calls < 3 {
			return 0, errTransient
		}
		return 42, nil
	})

	require.NoError(t, err)
	require.Equal(t, int64(42), got)
	require.Equal(t, 3, calls)
	require.Equal(t, []time.Duration{time.Second, 2 * time.Second}, timer.waits)
}

func TestDo_GivesUpAfterMaxAttempts(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	timer := newFakeTimer()
	p := New(4, time.Second, WithTimer(timer), WithLogger(zap.New(core)))

	calls := 0
	_, err := Do(context.Background(), p, "fetchEvents(CABC)", func(context.Context) (string, error) {
		calls++
		return "", errTransient
	})

	require.Error(t, err)
	require.Equal(t, 4, calls)
	require.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, timer.waits)

	require.ErrorIs(t, err, errTransient)
	var retryErr *Error
	require.ErrorAs(t, err, &retryErr)
	require.Equal(t, "fetchEvents(CABC)", retryErr.Label)
	require.Equal(t, 4, retryErr.Attempts)
	require.Contains(t, err.Error(), "fetchEvents(CABC)")

	require.Equal(t, 3, logs.FilterMessage("Retrying operation").Len())
	require.Equal(t, 1, logs.FilterMessage("Operation failed").Len())
}

func TestDo_PermanentErrorIsNotRetried(t *testing.T) {
	timer := newFakeTimer()
	p := New(4, time.Second, WithTimer(timer))
	errMalformed := errors.New("invalid params")

	calls := 0
	err := Run(context.Background(), p, "submitTransaction", func(context.Context) error {
		calls++
		return Permanent(errMalformed)
	})

	require.ErrorIs(t, err, errMalformed)
	require.Equal(t, 1, calls)
	require.Empty(t, timer.waits)
}

func TestDo_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(4, time.Hour)
	calls := 0
	err := Run(ctx, p, "getHealth", func(context.Context) error {
		calls++
		return errTransient
	})

	require.ErrorIs(t, err, context.Canceled)
	require.LessOrEqual(t, calls, 1)
}

func TestDo_SingleAttempt(t *testing.T) {
	timer := newFakeTimer()
	p := New(1, time.Second, WithTimer(timer))

	calls := 0
	err := Run(context.Background(), p, "readLedgerEntries", func(context.Context) error {
		calls++
		return errTransient
	})

	require.ErrorIs(t, err, errTransient)
	require.Equal(t, 1, calls)
	require.Empty(t, timer.waits)
}

func TestPolicy_Delay(t *testing.T) {
	p := New(4, 500*time.Millisecond)
	require.Equal(t, 500*time.Millisecond, p.Delay(1))
	require.Equal(t, time.Second, p.Delay(2))
	require.Equal(t, 2*time.Second, p.Delay(3))
	require.Equal(t, 4, p.MaxAttempts())
}

func TestNew_Defaults(t *testing.T) {
	p := New(0, 0)
	require.Equal(t, DefaultMaxAttempts, p.MaxAttempts())
	require.Equal(t, DefaultBaseDelay, p.Delay(1))
}
