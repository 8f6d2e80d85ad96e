package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/cvsync/internal/core/domain"
	"github.com/custodia-labs/cvsync/internal/core/ports/driven"
	"github.com/custodia-labs/cvsync/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService exposes recorded sync runs.
type HistoryService struct {
	store   driven.HistoryStore
	backups driven.BackupStore
}

// NewHistoryService creates a new history service. Either store may be nil.
func NewHistoryService(store driven.HistoryStore, backups driven.BackupStore) *HistoryService {
	return &HistoryService{store: store, backups: backups}
}

// Recent returns up to limit runs, most recent first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.SyncReport, error) {
	if s.store == nil {
		return nil, domain.ErrHistoryUnavailable
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", domain.ErrInvalidInput)
	}

	reports, err := s.store.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return reports, nil
}

// Get returns a single run by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.SyncReport, error) {
	if s.store == nil {
		return nil, domain.ErrHistoryUnavailable
	}
	if id == "" {
		return nil, fmt.Errorf("%w: run id required", domain.ErrInvalidInput)
	}

	return s.store.Get(ctx, id)
}

// Backups lists the page backups available for revert, oldest first.
func (s *HistoryService) Backups(ctx context.Context) ([]string, error) {
	if s.backups == nil {
		return nil, nil
	}

	names, err := s.backups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}
	return names, nil
}
