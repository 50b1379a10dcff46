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
		log.Println("creating ledger_cursors table...")
		if err := mghelper.CreateSchema(ctx, db, &eventlog.CursorDao{}); err != nil {
			return err
		}
		return mghelper.AddCheckConstraint(ctx, db, &eventlog.CursorDao{}, "ledger_cursors_ledger_non_negative", "last_ledger >= 0")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping ledger_cursors table...")
		return mghelper.DropTables(ctx, db, &eventlog.CursorDao{})
	})
}
