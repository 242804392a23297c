// Package postgres holds the PostgreSQL schema and error helpers used when
// lunchly runs against a shared database server instead of a local file.
package postgres

import (
	"database/sql"

	"github.com/GuiaBolso/darwin"
	_ "github.com/lib/pq"

	"winsbygroup.com/lunchly/internal/migrate"
)

// *NEVER* change/remove a step once released! Versions mirror the sqlite steps.
func defineMigrations() []darwin.Migration {
	return []darwin.Migration{
		{Version: 1.01, Description: "Create Table 'customers'", Script: `
		CREATE TABLE IF NOT EXISTS customers (
			id SERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT ''
		);`},

		{Version: 1.02, Description: "Create Index 'idx_customers_name'", Script: `
		CREATE INDEX IF NOT EXISTS idx_customers_name ON customers (last_name, first_name);`},

		{Version: 1.03, Description: "Create Table 'reservations'", Script: `
		CREATE TABLE IF NOT EXISTS reservations (
			id SERIAL PRIMARY KEY,
			customer_id INTEGER NOT NULL REFERENCES customers (id) ON DELETE CASCADE,
			start_at TIMESTAMPTZ NOT NULL,
			num_guests INTEGER NOT NULL CHECK (num_guests > 0),
			notes TEXT NOT NULL DEFAULT ''
		);`},

		{Version: 1.04, Description: "Create Index 'idx_reservations_customer_id'", Script: `
		CREATE INDEX IF NOT EXISTS idx_reservations_customer_id ON reservations (customer_id);`},
	}
}

// Schema returns the PostgreSQL definitions as a string for display.
func Schema() string {
	return migrate.Schema(defineMigrations())
}

// RunMigrations applies all migrations to an already-open *sql.DB.
func RunMigrations(db *sql.DB) error {
	return migrate.Run(db, migrate.Plan{
		Dialect:        darwin.PostgresDialect{},
		Migrations:     defineMigrations(),
		TableExistsSQL: `select count(*) as n from information_schema.tables where table_name = 'darwin_migrations';`,
	})
}
