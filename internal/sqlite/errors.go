package sqlite

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// IsForeignKeyError checks if the error is a SQLite FOREIGN KEY constraint violation.
func IsForeignKeyError(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}

// IsCheckConstraintError checks if the error is a SQLite CHECK constraint violation.
func IsCheckConstraintError(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintCheck
	}
	return false
}
