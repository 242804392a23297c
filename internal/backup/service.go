// Package backup writes compressed snapshots of a SQLite database.
package backup

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// ErrUnsupported is returned when the store cannot be snapshotted from
// inside the app.
var ErrUnsupported = errors.New("backups are only supported for sqlite databases")

type Service struct {
	db        *sqlx.DB
	backupDir string
}

// NewService snapshots db into a "backups" directory next to dbPath. An empty
// dbPath disables backups.
func NewService(db *sqlx.DB, dbPath string) *Service {
	s := &Service{db: db}
	if dbPath != "" {
		s.backupDir = filepath.Join(filepath.Dir(dbPath), "backups")
	}
	return s
}

// Result describes a completed backup.
type Result struct {
	Filename  string    `json:"filename"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

// Create takes a consistent copy of the live database with VACUUM INTO and
// stores it gzip-compressed as <timestamp>_lunchly.db.gz.
func (s *Service) Create(ctx context.Context) (*Result, error) {
	if s.backupDir == "" {
		return nil, ErrUnsupported
	}
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup directory: %w", err)
	}

	now := time.Now()
	filename := now.Format("2006-01-02_15.04.05") + "_lunchly.db.gz"
	backupPath := filepath.Join(s.backupDir, filename)

	snapshot, err := os.CreateTemp(s.backupDir, "snapshot-*.db")
	if err != nil {
		return nil, fmt.Errorf("create snapshot file: %w", err)
	}
	snapshotPath := snapshot.Name()
	snapshot.Close()
	defer os.Remove(snapshotPath)

	// VACUUM INTO refuses to overwrite an existing file
	if err := os.Remove(snapshotPath); err != nil {
		return nil, fmt.Errorf("clear snapshot file: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `VACUUM INTO ?`, snapshotPath); err != nil {
		return nil, fmt.Errorf("vacuum into snapshot: %w", err)
	}

	size, err := compress(snapshotPath, backupPath)
	if err != nil {
		os.Remove(backupPath)
		return nil, err
	}

	log.Info().Str("path", backupPath).Int64("size", size).Msg("backup written")
	return &Result{
		Filename:  filename,
		Path:      backupPath,
		Size:      size,
		CreatedAt: now,
	}, nil
}

// compress gzips src into dst and returns the size of dst.
func compress(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("open snapshot: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("create backup file: %w", err)
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	gz.Name = filepath.Base(src)
	if _, err := io.Copy(gz, in); err != nil {
		return 0, fmt.Errorf("write gzip data: %w", err)
	}
	if err := gz.Close(); err != nil {
		return 0, fmt.Errorf("close gzip writer: %w", err)
	}

	info, err := out.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat backup file: %w", err)
	}
	return info.Size(), nil
}
