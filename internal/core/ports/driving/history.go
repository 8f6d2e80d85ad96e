package driving

import (
	"context"

	"github.com/custodia-labs/cvsync/internal/core/domain"
)

// HistoryService exposes past sync runs.
type HistoryService interface {
	// Recent returns up to limit runs, most recent first.
	Recent(ctx context.Context, limit int) ([]domain.SyncReport, error)

	// Get returns a single run by ID.
	Get(ctx context.Context, id string) (*domain.SyncReport, error)

	// Backups lists the page backups available for revert, oldest first.
	Backups(ctx context.Context) ([]string, error)
}
