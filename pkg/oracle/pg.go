package oracle

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/oracle-indexer/pkg/pgutil"
)

var pendingStatuses = []string{
	StatusOpen.String(),
	StatusPaused.String(),
	StatusSettling.String(),
}

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the call store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) Create(ctx context.Context, c *Call) error {
	dao := toCallDao(c)
	_, err := pgutil.Conn(ctx, s.db).NewInsert().
		Model(dao).
		Returning("id, created_at, updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create call: %w", err)
	}
	c.ID = dao.ID
	c.CreatedAt = dao.CreatedAt
	c.UpdatedAt = dao.UpdatedAt
	return nil
}

func (s *pgStore) Get(ctx context.Context, id int64) (*Call, error) {
	dao := new(CallDao)
	err := pgutil.Conn(ctx, s.db).NewSelect().
		Model(dao).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCallNotFound
		}
		return nil, fmt.Errorf("failed to get call %d: %w", id, err)
	}
	return fromCallDao(dao), nil
}

func (s *pgStore) UpdateCall(ctx context.Context, id int64, fn UpdateFunc) (*Call, error) {
	var result *Call
	err := pgutil.RunInTx(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		dao := new(CallDao)
		err := tx.NewSelect().
			Model(dao).
			Where("id = ?", id).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrCallNotFound
			}
			return fmt.Errorf("failed to lock call %d: %w", id, err)
		}

		c := fromCallDao(dao)
		if err := fn(ctx, c); err != nil {
			if errors.Is(err, ErrSkipUpdate) {
				result = fromCallDao(dao)
				return nil
			}
			return err
		}

		next := toCallDao(c)
		next.ID = id
		next.UpdatedAt = time.Now().UTC()
		if _, err := tx.NewUpdate().
			Model(next).
			Column("status", "report_count", "is_hidden", "processed_at", "failed_at",
				"resolved_at", "final_price", "updated_at").
			WherePK().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to update call %d: %w", id, err)
		}

		result = fromCallDao(next)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *pgStore) Pending(ctx context.Context, now time.Time, limit int) ([]*Call, error) {
	var daos []CallDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("processed_at IS NULL").
		Where("failed_at IS NULL").
		Where("status IN (?)", bun.In(pendingStatuses)).
		Where("call_time <= ?", now).
		Order("call_time ASC", "id ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending calls: %w", err)
	}

	calls := make([]*Call, len(daos))
	for i := range daos {
		calls[i] = fromCallDao(&daos[i])
	}
	return calls, nil
}
