package driven

import (
	"context"

	"github.com/custodia-labs/cvsync/internal/core/domain"
)

// HistoryStore persists sync run reports.
type HistoryStore interface {
	// Record stores a run report.
	Record(ctx context.Context, report *domain.SyncReport) error

	// Recent returns up to limit reports, most recent first.
	Recent(ctx context.Context, limit int) ([]domain.SyncReport, error)

	// Get retrieves a report by run ID.
	Get(ctx context.Context, id string) (*domain.SyncReport, error)

	// Prune keeps only the most recent keep reports.
	Prune(ctx context.Context, keep int) error
}
