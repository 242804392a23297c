package testutil

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"winsbygroup.com/lunchly/internal/database"
	"winsbygroup.com/lunchly/internal/sqlite"
)

// NewTestDB returns a migrated SQLite database in a temp dir, closed on cleanup.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	return NewTestDBAt(t, filepath.Join(t.TempDir(), "test.db"))
}

func NewTestDBAt(t *testing.T, dbPath string) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite3", database.SQLiteDSN(dbPath))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	// DELETE mode for tests
	if err := database.PrepareSQLite(db, "DELETE"); err != nil {
		t.Fatalf("prepare db: %v", err)
	}

	if err := sqlite.RunMigrations(db.DB); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}
