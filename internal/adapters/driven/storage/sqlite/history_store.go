package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/cvsync/internal/core/domain"
	"github.com/custodia-labs/cvsync/internal/core/ports/driven"
)

// timeLayout is fixed width so that text ordering matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Record stores a run report, replacing a previous report with the same ID.
func (s *historyStore) Record(ctx context.Context, report *domain.SyncReport) error {
	if report == nil || report.ID == "" {
		return domain.ErrInvalidInput
	}

	counts, err := json.Marshal(report.Counts)
	if err != nil {
		return fmt.Errorf("marshalling counts: %w", err)
	}
	dropped, err := json.Marshal(report.Dropped)
	if err != nil {
		return fmt.Errorf("marshalling dropped: %w", err)
	}
	skipped := report.SkippedRegions
	if skipped == nil {
		skipped = []domain.Region{}
	}
	skippedJSON, err := json.Marshal(skipped)
	if err != nil {
		return fmt.Errorf("marshalling skipped regions: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO sync_runs
			(id, started_at, ended_at, dry_run, backup, success, error, counts, dropped, skipped)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, report.ID,
		formatTime(report.StartedAt),
		formatTime(report.EndedAt),
		boolToInt(report.DryRun),
		nullString(report.Backup),
		boolToInt(report.Success),
		nullString(report.Error),
		string(counts),
		string(dropped),
		string(skippedJSON))

	if err != nil {
		return fmt.Errorf("recording sync run: %w", err)
	}
	return nil
}

// Recent returns up to limit reports, most recent first.
func (s *historyStore) Recent(ctx context.Context, limit int) ([]domain.SyncReport, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, started_at, ended_at, dry_run, backup, success, error, counts, dropped, skipped
		FROM sync_runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying sync history: %w", err)
	}
	defer rows.Close()

	var reports []domain.SyncReport //nolint:prealloc // size unknown from query
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sync history: %w", err)
	}

	return reports, nil
}

// Get retrieves a report by run ID.
func (s *historyStore) Get(ctx context.Context, id string) (*domain.SyncReport, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, started_at, ended_at, dry_run, backup, success, error, counts, dropped, skipped
		FROM sync_runs
		WHERE id = ?
	`, id)

	report, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return report, err
}

// Prune deletes all runs except the most recent keep.
func (s *historyStore) Prune(ctx context.Context, keep int) error {
	_, err := s.store.db.ExecContext(ctx, `
		DELETE FROM sync_runs
		WHERE id NOT IN (
			SELECT id FROM (
				SELECT id, ROW_NUMBER() OVER (ORDER BY started_at DESC) as rn
				FROM sync_runs
			) WHERE rn <= ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("pruning sync history: %w", err)
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanReport(row scanner) (*domain.SyncReport, error) {
	var report domain.SyncReport
	var startedAt, endedAt, counts, dropped, skipped string
	var dryRun, success int
	var backup, errMsg sql.NullString

	if err := row.Scan(&report.ID, &startedAt, &endedAt, &dryRun, &backup,
		&success, &errMsg, &counts, &dropped, &skipped); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning sync run: %w", err)
	}

	report.StartedAt = parseTime(startedAt)
	report.EndedAt = parseTime(endedAt)
	report.DryRun = dryRun == 1
	report.Success = success == 1
	if backup.Valid {
		report.Backup = backup.String
	}
	if errMsg.Valid {
		report.Error = errMsg.String
	}

	if err := json.Unmarshal([]byte(counts), &report.Counts); err != nil {
		return nil, fmt.Errorf("unmarshalling counts: %w", err)
	}
	if err := json.Unmarshal([]byte(dropped), &report.Dropped); err != nil {
		return nil, fmt.Errorf("unmarshalling dropped: %w", err)
	}
	if err := json.Unmarshal([]byte(skipped), &report.SkippedRegions); err != nil {
		return nil, fmt.Errorf("unmarshalling skipped regions: %w", err)
	}
	if len(report.SkippedRegions) == 0 {
		report.SkippedRegions = nil
	}

	return &report, nil
}

// formatTime formats t in UTC with a fixed-width layout.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime returns zero time if s is empty or invalid.
func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullString returns nil for empty strings, otherwise the string.
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// boolToInt converts a bool to 1 (true) or 0 (false).
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
