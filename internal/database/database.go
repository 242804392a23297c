// Package database opens the configured store, prepares the connection and
// brings the schema up to date.
package database

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"winsbygroup.com/lunchly/internal/config"
	"winsbygroup.com/lunchly/internal/postgres"
	"winsbygroup.com/lunchly/internal/sqlite"
)

// Open connects to the database named by cfg and runs migrations.
// isNew reports whether a SQLite file was created by this call; it is always
// false for postgres.
func Open(cfg *config.Config) (db *sqlx.DB, isNew bool, err error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		db, err = openPostgres(cfg)
		return db, false, err
	case config.DriverSQLite:
		return openSQLite(cfg)
	default:
		return nil, false, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}
}

func openSQLite(cfg *config.Config) (*sqlx.DB, bool, error) {
	isNew := false
	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		isNew = true
		log.Info().Msgf("Creating database '%s' (from %s setting)", cfg.DBPath, cfg.DBPathSource)
	} else {
		log.Info().Msgf("Opening database '%s' (from %s setting)", cfg.DBPath, cfg.DBPathSource)
	}

	db, err := sqlx.Connect(config.DriverSQLite, SQLiteDSN(cfg.DBPath))
	if err != nil {
		return nil, false, err
	}

	if err := PrepareSQLite(db, "WAL"); err != nil {
		db.Close()
		return nil, false, err
	}

	if err := sqlite.RunMigrations(db.DB); err != nil {
		db.Close()
		return nil, false, err
	}

	return db, isNew, nil
}

// SQLiteDSN adds the foreign key flag so every pooled connection enforces
// constraints, not just the one PrepareSQLite runs on.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys=") {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

// PrepareSQLite sets the journal mode and turns on foreign key enforcement,
// which reservations rely on for cascade deletes.
func PrepareSQLite(db *sqlx.DB, journalMode string) error {
	if _, err := db.Exec(`PRAGMA journal_mode=` + journalMode + `;`); err != nil {
		return err
	}

	// Foreign key support is per connection
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		return err
	}

	var fkEnabled int
	if err := db.QueryRow(`PRAGMA foreign_keys;`).Scan(&fkEnabled); err != nil {
		return errors.New("SQLite foreign key support check failed: " + err.Error())
	}
	if fkEnabled != 1 {
		return errors.New("SQLite foreign keys not supported (requires SQLite 3.6.19+ compiled without SQLITE_OMIT_FOREIGN_KEY)")
	}
	return nil
}

func openPostgres(cfg *config.Config) (*sqlx.DB, error) {
	log.Info().Msgf("Connecting to postgres (from %s setting)", cfg.DBPathSource)

	db, err := sqlx.Connect(config.DriverPostgres, cfg.DBPath)
	if err != nil {
		return nil, err
	}

	if err := postgres.RunMigrations(db.DB); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// IsForeignKeyViolation reports a foreign key failure from either driver.
func IsForeignKeyViolation(err error) bool {
	return sqlite.IsForeignKeyError(err) || postgres.IsForeignKeyError(err)
}

// IsCheckViolation reports a CHECK constraint failure from either driver.
func IsCheckViolation(err error) bool {
	return sqlite.IsCheckConstraintError(err) || postgres.IsCheckConstraintError(err)
}
