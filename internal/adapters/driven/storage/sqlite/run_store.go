package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/flobnar/internal/core/domain"
	"github.com/custodia-labs/flobnar/internal/core/ports/driven"
)

// timeLayout is fixed width so that started_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// Save stores or updates a run record, assigning an ID when it has none.
func (s *runStore) Save(ctx context.Context, record *domain.RunRecord) error {
	if record == nil {
		return domain.ErrInvalidInput
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO runs (id, program, digest, value, output, error, steps, started_at, duration_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			program = excluded.program,
			digest = excluded.digest,
			value = excluded.value,
			output = excluded.output,
			error = excluded.error,
			steps = excluded.steps,
			started_at = excluded.started_at,
			duration_ns = excluded.duration_ns
	`,
		record.ID,
		nullString(record.Program),
		record.Digest,
		record.Value,
		record.Output,
		nullString(record.Error),
		record.Steps,
		formatTime(record.StartedAt),
		record.Duration.Nanoseconds(),
	)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// Get retrieves a run record by ID.
func (s *runStore) Get(ctx context.Context, id string) (*domain.RunRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, program, digest, value, output, error, steps, started_at, duration_ns
		FROM runs WHERE id = ?
	`, id)
	return scanRun(row)
}

// List returns records newest first. A limit of zero or less returns all.
func (s *runStore) List(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, program, digest, value, output, error, steps, started_at, duration_ns
		FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var records []domain.RunRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		record, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return records, nil
}

// Clear removes all run records and returns how many were removed.
func (s *runStore) Clear(ctx context.Context) (int, error) {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM runs")
	if err != nil {
		return 0, fmt.Errorf("clearing runs: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared runs: %w", err)
	}
	return int(n), nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.RunRecord, error) {
	var (
		record     domain.RunRecord
		program    sql.NullString
		runErr     sql.NullString
		startedAt  string
		durationNS int64
	)

	err := row.Scan(
		&record.ID,
		&program,
		&record.Digest,
		&record.Value,
		&record.Output,
		&runErr,
		&record.Steps,
		&startedAt,
		&durationNS,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	record.Program = program.String
	record.Error = runErr.String
	record.StartedAt = parseTime(startedAt)
	record.Duration = time.Duration(durationNS)
	return &record, nil
}

// formatTime renders t in UTC with the fixed-width layout.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime parses a stored timestamp. Returns zero time if it is invalid.
func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullString returns nil for empty strings, otherwise the string.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
