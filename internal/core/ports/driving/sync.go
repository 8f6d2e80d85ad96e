package driving

import (
	"context"

	"github.com/custodia-labs/cvsync/internal/core/domain"
)

// SyncService coordinates synchronisation of the page from the LaTeX sources.
type SyncService interface {
	// Sync extracts all records and rewrites the destination page.
	// Source read failures abort before the page is touched.
	Sync(ctx context.Context, opts SyncOptions) (*domain.SyncReport, error)

	// Revert restores the page from the most recent backup and returns its name.
	// Returns domain.ErrNoBackup when there is nothing to restore.
	Revert(ctx context.Context) (string, error)

	// Extract reads and parses the sources without touching the page.
	Extract(ctx context.Context) (*domain.CV, error)
}

// SyncOptions tunes a single sync run.
type SyncOptions struct {
	// DryRun applies every region update in memory but takes no backup
	// and does not write the page.
	DryRun bool
}
