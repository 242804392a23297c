// Package migrate applies darwin migrations and reports version changes.
// Dialect packages (sqlite, postgres) own their scripts and call Run.
package migrate

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/GuiaBolso/darwin"
	"github.com/rs/zerolog/log"
)

// Plan is one dialect's set of migrations.
type Plan struct {
	Dialect    darwin.Dialect
	Migrations []darwin.Migration

	// TableExistsSQL counts tables named darwin_migrations. It lets a fresh
	// database report version 0 instead of failing.
	TableExistsSQL string
}

// Run applies any pending migrations in p to db.
func Run(db *sql.DB, p Plan) error {
	count, v1, err := currentVersion(db, p.TableExistsSQL)
	if err != nil {
		return err
	}

	migrations := Minified(p.Migrations)
	if n := len(migrations); n > 0 && count == n && v1 == migrations[n-1].Version {
		log.Info().Msgf("Database version %.2f is current, no migrations needed", v1)
		return nil
	}

	driver := darwin.NewGenericDriver(db, p.Dialect)
	infoChan := make(chan darwin.MigrationInfo, len(migrations))
	d := darwin.New(driver, migrations, infoChan)

	var v2 float64
	if err := d.Migrate(); err != nil {
		close(infoChan)
		_, v2, _ = currentVersion(db, p.TableExistsSQL)
		prog := progress(infoChan)
		log.Error().Err(err).Msgf("migration (was v%.2f now v%.2f): %s", v1, v2, prog)
		return fmt.Errorf("migration error: %w\n%s", err, prog)
	}
	close(infoChan)

	_, v2, err = currentVersion(db, p.TableExistsSQL)
	if err != nil {
		return err
	}

	log.Info().Msg(Changes(v1, v2))
	return nil
}

// Changes returns a user-friendly display of database version changes.
func Changes(v1, v2 float64) string {
	if v1 != v2 {
		return fmt.Sprintf("DB Version: %.2f (migrated from %.2f to %.2f)", v2, v1, v2)
	}
	return fmt.Sprintf("DB Version: %.2f", v1)
}

// currentVersion returns the number of applied steps and the latest version.
func currentVersion(db *sql.DB, tableExistsSQL string) (count int, ver float64, err error) {
	err = db.QueryRow(tableExistsSQL).Scan(&count)
	if err != nil || count == 0 {
		return 0, 0, err
	}

	s := `select count(*) as n, max(version) as ver from darwin_migrations;`
	err = db.QueryRow(s).Scan(&count, &ver)
	return count, ver, err
}

// Minified returns a copy of migrations with minified scripts, so comment or
// whitespace edits do not change the stored checksum.
func Minified(migrations []darwin.Migration) []darwin.Migration {
	out := make([]darwin.Migration, len(migrations))
	copy(out, migrations)
	for i := range out {
		out[i].Script = Minify(out[i].Script)
	}
	return out
}

// Minify strips comments, case and redundant whitespace from a script.
func Minify(script string) string {
	b := strings.Builder{}
	s := strings.ToLower(strings.ReplaceAll(script, "/*", "--"))
	for _, line := range strings.Split(s, "\n") {
		if i := strings.Index(line, "--"); i != -1 {
			line = line[0:i]
		}
		b.WriteString(strings.TrimSpace(line) + "\n")
	}
	result := strings.TrimSpace(strings.ReplaceAll(b.String(), "\t", " "))
	before := 0
	for len(result) != before {
		before = len(result)
		result = strings.ReplaceAll(result, "  ", " ")
	}
	return strings.TrimSpace(result)
}

func progress(ch <-chan darwin.MigrationInfo) string {
	var b strings.Builder
	for info := range ch {
		_, _ = fmt.Fprintf(&b, "v%.2f: \"%s\" (%s) Error: %v\n",
			info.Migration.Version, info.Migration.Description, info.Status.String(), info.Error)
	}
	return b.String()
}

// Schema renders migrations for display.
func Schema(migrations []darwin.Migration) string {
	var b strings.Builder
	for _, m := range migrations {
		_, _ = fmt.Fprintf(&b, "-- %s (%.2f)\n%s\n\n", m.Description, m.Version, m.Script)
	}
	return b.String()
}
