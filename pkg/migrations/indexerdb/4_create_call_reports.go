package indexerdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/chainsafe/oracle-indexer/pkg/moderation"
	mghelper "github.com/chainsafe/oracle-indexer/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating call_reports table...")
		if err := mghelper.CreateSchema(ctx, db, &moderation.ReportDao{}); err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, `ALTER TABLE call_reports
			ADD CONSTRAINT call_reports_call_id_fkey
			FOREIGN KEY (call_id) REFERENCES oracle_calls (id) ON DELETE CASCADE`); err != nil {
			return err
		}
		// one report per reporter and call
		return mghelper.CreateModelCompositeUniqueIndex(ctx, db, &moderation.ReportDao{},
			"idx_call_reports_call_reporter", "call_id", "reporter_address")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping call_reports table...")
		return mghelper.DropTables(ctx, db, &moderation.ReportDao{})
	})
}
