package eventlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/chainsafe/oracle-indexer/pkg/events"
	"github.com/chainsafe/oracle-indexer/pkg/pgutil"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the event log
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) Append(ctx context.Context, rec *Record) (bool, error) {
	dao := toRecordDao(rec)
	res, err := pgutil.Conn(ctx, s.db).NewInsert().
		Model(dao).
		On("CONFLICT (event_id) DO NOTHING").
		Returning("NULL").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to append event %s: %w", rec.EventID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}

// Exists reports whether eventID is already in the log.
func (s *pgStore) Exists(ctx context.Context, eventID string) (bool, error) {
	exists, err := pgutil.Conn(ctx, s.db).NewSelect().
		Model((*RecordDao)(nil)).
		Where("event_id = ?", eventID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check event %s: %w", eventID, err)
	}
	return exists, nil
}

// InTx runs fn in a transaction that Append, SetCursor and the projectors join.
func (s *pgStore) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return pgutil.RunInTx(ctx, s.db, func(ctx context.Context, _ bun.Tx) error {
		return fn(ctx)
	})
}

func (s *pgStore) MaxLedger(ctx context.Context, contractID string) (int64, bool, error) {
	var maxLedger sql.NullInt64
	err := pgutil.Conn(ctx, s.db).NewSelect().
		Model((*RecordDao)(nil)).
		ColumnExpr("MAX(ledger)").
		Where("contract_id = ?", contractID).
		Scan(ctx, &maxLedger)
	if err != nil {
		return 0, false, fmt.Errorf("failed to get max ledger: %w", err)
	}
	return maxLedger.Int64, maxLedger.Valid, nil
}

func (s *pgStore) Cursor(ctx context.Context, contractID string) (int64, bool, error) {
	dao := new(CursorDao)
	err := pgutil.Conn(ctx, s.db).NewSelect().
		Model(dao).
		Where("contract_id = ?", contractID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get cursor: %w", err)
	}
	return dao.LastLedger, true, nil
}

func (s *pgStore) SetCursor(ctx context.Context, contractID string, ledger int64) error {
	_, err := pgutil.Conn(ctx, s.db).NewInsert().
		Model(&CursorDao{ContractID: contractID, LastLedger: ledger}).
		On("CONFLICT (contract_id) DO UPDATE").
		Set("last_ledger = GREATEST(?TableAlias.last_ledger, EXCLUDED.last_ledger)").
		Set("updated_at = current_timestamp").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set cursor to ledger %d: %w", ledger, err)
	}
	return nil
}

func (s *pgStore) Count(ctx context.Context) (int64, error) {
	n, err := s.db.NewSelect().Model((*RecordDao)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return int64(n), nil
}

func (s *pgStore) Latest(ctx context.Context) (*Record, error) {
	dao := new(RecordDao)
	err := s.db.NewSelect().
		Model(dao).
		Order("ledger DESC", "tx_order DESC", "id DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get latest event: %w", err)
	}
	return fromRecordDao(dao), nil
}

func (s *pgStore) ListByType(ctx context.Context, typ events.Type, limit int) ([]*Record, error) {
	var daos []RecordDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("event_type = ?", typ.String()).
		Order("ledger DESC", "tx_order DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s events: %w", typ, err)
	}

	records := make([]*Record, len(daos))
	for i := range daos {
		records[i] = fromRecordDao(&daos[i])
	}
	return records, nil
}
