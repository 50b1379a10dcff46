package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun"

	"github.com/chainsafe/oracle-indexer/pkg/config"
	"github.com/chainsafe/oracle-indexer/pkg/pgutil"
)

// Test DAO for testing purposes
type testDao struct {
	bun.BaseModel `bun:"table:test_table"`
	ID            int64  `bun:",pk,autoincrement"`
	Name          string `bun:",notnull,type:varchar(100)"`
	Age           int    `bun:",nullzero"`
}

func indexExists(t *testing.T, db *bun.DB, name string) bool {
	t.Helper()
	var exists bool
	query := `SELECT EXISTS (SELECT FROM pg_indexes WHERE schemaname = 'public' AND indexname = ?)`
	if err := db.NewRaw(query, name).Scan(context.Background(), &exists); err != nil {
		t.Fatalf("failed to check index %s: %v", name, err)
	}
	return exists
}

func TestConnectDB_InvalidHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "invalid-host-that-does-not-exist",
		Port:     5432,
		User:     "test",
		Password: "test",
		Database: "test",
		SSLMode:  "disable",
	}

	db, err := pgutil.ConnectDB(context.Background(), cfg)
	if err == nil {
		_ = db.Close()
		t.Error("ConnectDB() should fail with invalid host")
	}
}

func TestCreateSchema(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	err := CreateSchema(ctx, db, &testDao{})
	if err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	pgutil.AssertTableExists(t, db, "test_table")

	// Verify idempotency - calling again should not fail
	err = CreateSchema(ctx, db, &testDao{})
	if err != nil {
		t.Errorf("CreateSchema() second call failed: %v", err)
	}
}

func TestDropTables(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	pgutil.AssertTableExists(t, db, "test_table")

	if err := DropTables(ctx, db, &testDao{}); err != nil {
		t.Fatalf("DropTables() failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "test_table")

	if err := DropTables(ctx, db, &testDao{}); err != nil {
		t.Errorf("DropTables() second call failed: %v", err)
	}
}

func TestTruncateTables(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	for _, name := range []string{"User1", "User2"} {
		if _, err := db.NewInsert().Model(&testDao{Name: name, Age: 20}).Exec(ctx); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}
	pgutil.AssertRowCount(t, db, "test_table", 2)

	if err := TruncateTables(ctx, db, &testDao{}); err != nil {
		t.Fatalf("TruncateTables() failed: %v", err)
	}
	pgutil.AssertRowCount(t, db, "test_table", 0)
	pgutil.AssertTableExists(t, db, "test_table")
}

func TestCreateModelIndexes(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}

	if err := CreateModelIndexes(ctx, db, &testDao{}, "name", "age"); err != nil {
		t.Fatalf("CreateModelIndexes() failed: %v", err)
	}
	pgutil.AssertIndexExists(t, db, "idx_test_table_name")
	pgutil.AssertIndexExists(t, db, "idx_test_table_age")

	if err := DropIndex(ctx, db, "idx_test_table_age"); err != nil {
		t.Fatalf("DropIndex() failed: %v", err)
	}
	if indexExists(t, db, "idx_test_table_age") {
		t.Error("idx_test_table_age should be dropped")
	}
	if err := DropIndex(ctx, db, "idx_test_table_age"); err != nil {
		t.Errorf("DropIndex() second call failed: %v", err)
	}
}

func TestCreateModelUniqueIndexes(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if err := CreateModelUniqueIndexes(ctx, db, &testDao{}, "name"); err != nil {
		t.Fatalf("CreateModelUniqueIndexes() failed: %v", err)
	}
	pgutil.AssertIndexExists(t, db, "idx_test_table_name")

	if _, err := db.NewInsert().Model(&testDao{Name: "Unique", Age: 20}).Exec(ctx); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	_, err := db.NewInsert().Model(&testDao{Name: "Unique", Age: 25}).Exec(ctx)
	if !pgutil.IsUniqueViolation(err) {
		t.Errorf("expected unique violation, got %v", err)
	}
}

func TestCreateModelCompositeIndexes(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}

	if err := CreateModelCompositeIndex(ctx, db, &testDao{}, "idx_test_name_age", "name", "age"); err != nil {
		t.Fatalf("CreateModelCompositeIndex() failed: %v", err)
	}
	pgutil.AssertIndexExists(t, db, "idx_test_name_age")

	if err := CreateModelCompositeUniqueIndex(ctx, db, &testDao{}, "idx_test_unique_name_age", "name", "age"); err != nil {
		t.Fatalf("CreateModelCompositeUniqueIndex() failed: %v", err)
	}
	if _, err := db.NewInsert().Model(&testDao{Name: "a", Age: 1}).Exec(ctx); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := db.NewInsert().Model(&testDao{Name: "a", Age: 2}).Exec(ctx); err != nil {
		t.Fatalf("same name with another age should insert: %v", err)
	}
	_, err := db.NewInsert().Model(&testDao{Name: "a", Age: 1}).Exec(ctx)
	if !pgutil.IsUniqueViolation(err) {
		t.Errorf("expected unique violation, got %v", err)
	}

	if err := CreateModelCompositeIndex(ctx, db, &testDao{}, "idx_empty"); err == nil {
		t.Error("expected error for index without columns")
	}
}

func TestAddCheckConstraint(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if err := AddCheckConstraint(ctx, db, &testDao{}, "test_table_age_positive", "age > 0"); err != nil {
		t.Fatalf("AddCheckConstraint() failed: %v", err)
	}
	// re-adding replaces the constraint
	if err := AddCheckConstraint(ctx, db, &testDao{}, "test_table_age_positive", "age > 0"); err != nil {
		t.Fatalf("AddCheckConstraint() second call failed: %v", err)
	}

	if _, err := db.NewInsert().Model(&testDao{Name: "ok", Age: 1}).Exec(ctx); err != nil {
		t.Fatalf("valid insert failed: %v", err)
	}
	if _, err := db.NewInsert().Model(&testDao{Name: "bad", Age: -1}).Exec(ctx); err == nil {
		t.Error("expected check violation for negative age")
	}
}
