package indexerdb

import (
	"context"
	"fmt"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/chainsafe/oracle-indexer/pkg/pgutil/migrations"
	"github.com/chainsafe/oracle-indexer/pkg/settings"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating platform_settings table...")
		if err := mghelper.CreateSchema(ctx, db, &settings.SettingsDao{}); err != nil {
			return err
		}
		if err := mghelper.AddCheckConstraint(ctx, db, &settings.SettingsDao{},
			"platform_settings_singleton", fmt.Sprintf("id = %d", settings.SingletonID)); err != nil {
			return err
		}
		return mghelper.AddCheckConstraint(ctx, db, &settings.SettingsDao{},
			"platform_settings_fee_range", "fee_percent >= 0 AND fee_percent <= 100")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping platform_settings table...")
		return mghelper.DropTables(ctx, db, &settings.SettingsDao{})
	})
}
