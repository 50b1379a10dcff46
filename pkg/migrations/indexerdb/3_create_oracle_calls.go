package indexerdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/chainsafe/oracle-indexer/pkg/oracle"
	mghelper "github.com/chainsafe/oracle-indexer/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating oracle_calls table...")
		if err := mghelper.CreateSchema(ctx, db, &oracle.CallDao{}); err != nil {
			return err
		}
		if err := mghelper.AddCheckConstraint(ctx, db, &oracle.CallDao{}, "oracle_calls_status",
			"status IN ('DRAFT', 'OPEN', 'PAUSED', 'SETTLING', 'RESOLVED_YES', 'RESOLVED_NO')"); err != nil {
			return err
		}
		if err := mghelper.AddCheckConstraint(ctx, db, &oracle.CallDao{}, "oracle_calls_report_count",
			"report_count >= 0"); err != nil {
			return err
		}
		// resolution sweep: unprocessed calls by status and due time
		if err := mghelper.CreateModelCompositeIndex(ctx, db, &oracle.CallDao{}, "idx_oracle_calls_status_call_time", "status", "call_time"); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &oracle.CallDao{}, "base_token")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping oracle_calls table...")
		return mghelper.DropTables(ctx, db, &oracle.CallDao{})
	})
}
