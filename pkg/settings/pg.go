package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/oracle-indexer/pkg/pgutil"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the settings store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) Create(ctx context.Context, st *Settings) (bool, error) {
	dao := toSettingsDao(st)
	dao.ID = SingletonID

	res, err := pgutil.Conn(ctx, s.db).NewInsert().
		Model(dao).
		On("CONFLICT (id) DO NOTHING").
		Returning("NULL").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to create settings: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}

func (s *pgStore) Get(ctx context.Context) (*Settings, error) {
	dao := new(SettingsDao)
	err := pgutil.Conn(ctx, s.db).NewSelect().
		Model(dao).
		Where("id = ?", SingletonID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return fromSettingsDao(dao), nil
}

func (s *pgStore) Update(ctx context.Context, fn func(st *Settings) error) (*Settings, error) {
	var updated *Settings
	err := pgutil.RunInTx(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		dao := new(SettingsDao)
		err := tx.NewSelect().
			Model(dao).
			Where("id = ?", SingletonID).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrSettingsNotFound
			}
			return fmt.Errorf("failed to lock settings: %w", err)
		}

		st := fromSettingsDao(dao)
		if err := fn(st); err != nil {
			return err
		}

		next := toSettingsDao(st)
		next.ID = SingletonID
		next.UpdatedAt = time.Now().UTC()
		if _, err := tx.NewUpdate().
			Model(next).
			Column("fee_percent", "contract_id", "oracle_contract_id",
				"last_updated_by_tx_hash", "last_updated_at_ledger", "updated_at").
			WherePK().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to update settings: %w", err)
		}

		updated = fromSettingsDao(next)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
