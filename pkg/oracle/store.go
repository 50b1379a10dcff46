package oracle

import (
	"context"
	"errors"
	"time"
)

// ErrSkipUpdate may be returned by an UpdateCall function to leave the row
// untouched. UpdateCall then returns the loaded call and no error.
var ErrSkipUpdate = errors.New("skip update")

// UpdateFunc mutates a locked call. ctx carries the transaction the call is
// locked in, so writes made through it commit or roll back together.
type UpdateFunc func(ctx context.Context, c *Call) error

// Store defines call persistence.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	Create(ctx context.Context, c *Call) error
	Get(ctx context.Context, id int64) (*Call, error)
	// UpdateCall loads call id with a row lock, runs fn and persists the
	// result, all in one transaction. fn errors roll the transaction back.
	UpdateCall(ctx context.Context, id int64, fn UpdateFunc) (*Call, error)
	// Pending returns unprocessed, unfailed markets in OPEN, PAUSED or
	// SETTLING whose call time is not after now, oldest first.
	Pending(ctx context.Context, now time.Time, limit int) ([]*Call, error)
}
