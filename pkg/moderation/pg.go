package moderation

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/chainsafe/oracle-indexer/pkg/pgutil"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the report store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) Exists(ctx context.Context, callID int64, reporter string) (bool, error) {
	exists, err := pgutil.Conn(ctx, s.db).NewSelect().
		Model((*ReportDao)(nil)).
		Where("call_id = ?", callID).
		Where("reporter_address = ?", reporter).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check report: %w", err)
	}
	return exists, nil
}

func (s *pgStore) Create(ctx context.Context, r *Report) error {
	dao := toReportDao(r)
	_, err := pgutil.Conn(ctx, s.db).NewInsert().
		Model(dao).
		Returning("created_at").
		Exec(ctx)
	if err != nil {
		if pgutil.IsUniqueViolation(err) {
			return ErrDuplicateReport
		}
		return fmt.Errorf("failed to create report: %w", err)
	}
	r.CreatedAt = dao.CreatedAt
	return nil
}

func (s *pgStore) ListByCall(ctx context.Context, callID int64) ([]*Report, error) {
	var daos []ReportDao
	err := pgutil.Conn(ctx, s.db).NewSelect().
		Model(&daos).
		Where("call_id = ?", callID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports for call %d: %w", callID, err)
	}

	reports := make([]*Report, len(daos))
	for i := range daos {
		reports[i] = fromReportDao(&daos[i])
	}
	return reports, nil
}
