package moderation

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ReportDao maps to the 'call_reports' table.
type ReportDao struct {
	bun.BaseModel   `bun:"table:call_reports,alias:cr"`
	ID              uuid.UUID `bun:"id,pk,type:uuid"`
	CallID          int64     `bun:"call_id,notnull"`
	ReporterAddress string    `bun:"reporter_address,notnull,type:varchar(56)"`
	Reason          *string   `bun:"reason,type:varchar(500)"`
	CreatedAt       time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toReportDao(r *Report) *ReportDao {
	dao := &ReportDao{
		ID:              r.ID,
		CallID:          r.CallID,
		ReporterAddress: r.ReporterAddress,
		CreatedAt:       r.CreatedAt,
	}
	if r.Reason != "" {
		reason := r.Reason
		dao.Reason = &reason
	}
	return dao
}

func fromReportDao(dao *ReportDao) *Report {
	r := &Report{
		ID:              dao.ID,
		CallID:          dao.CallID,
		ReporterAddress: dao.ReporterAddress,
		CreatedAt:       dao.CreatedAt,
	}
	if dao.Reason != nil {
		r.Reason = *dao.Reason
	}
	return r
}
