package indexerdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/chainsafe/oracle-indexer/pkg/eventlog"
	mghelper "github.com/chainsafe/oracle-indexer/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating event_logs table...")
		if err := mghelper.CreateSchema(ctx, db, &eventlog.RecordDao{}); err != nil {
			return err
		}
		if err := mghelper.AddCheckConstraint(ctx, db, &eventlog.RecordDao{}, "event_logs_ledger_positive", "ledger > 0"); err != nil {
			return err
		}
		// cursor lookup: MAX(ledger) per contract
		if err := mghelper.CreateModelCompositeIndex(ctx, db, &eventlog.RecordDao{}, "idx_event_logs_contract_ledger", "contract_id", "ledger"); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &eventlog.RecordDao{}, "event_type", "tx_hash")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping event_logs table...")
		return mghelper.DropTables(ctx, db, &eventlog.RecordDao{})
	})
}
