// Package sqlite provides a SQLite-backed round history store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/guessing.game/internal/game/history"
	"github.com/louisbranch/guessing.game/internal/game/history/sqlite/migrations"
	"github.com/louisbranch/guessing.game/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// Store persists round history in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite history store at path and applies embedded
// migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("history path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Append inserts one finished round.
func (s *Store) Append(ctx context.Context, round history.Round) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	difficultyID := strings.TrimSpace(round.Difficulty)
	if difficultyID == "" {
		return fmt.Errorf("difficulty is required")
	}
	if round.Outcome != history.OutcomeWon && round.Outcome != history.OutcomeLost {
		return fmt.Errorf("outcome must be %q or %q", history.OutcomeWon, history.OutcomeLost)
	}
	if round.Tries < 0 {
		return fmt.Errorf("tries must not be negative")
	}
	playedAt := round.PlayedAt
	if playedAt.IsZero() {
		playedAt = time.Now()
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO rounds (difficulty, outcome, tries, secret, played_at_ms) VALUES (?, ?, ?, ?, ?)`,
		difficultyID,
		round.Outcome,
		round.Tries,
		round.Secret,
		playedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert round: %w", err)
	}
	return nil
}

// Totals returns lifetime played and won counts.
func (s *Store) Totals(ctx context.Context) (history.Totals, error) {
	if err := ctx.Err(); err != nil {
		return history.Totals{}, err
	}
	if s == nil || s.sqlDB == nil {
		return history.Totals{}, fmt.Errorf("storage is not configured")
	}

	var totals history.Totals
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(outcome = ?), 0) FROM rounds`,
		history.OutcomeWon,
	)
	if err := row.Scan(&totals.Played, &totals.Won); err != nil {
		return history.Totals{}, fmt.Errorf("scan totals: %w", err)
	}
	return totals, nil
}
