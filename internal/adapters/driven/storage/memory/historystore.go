package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/cvsync/internal/core/domain"
	"github.com/custodia-labs/cvsync/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	reports []domain.SyncReport
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Record stores a run report, replacing any report with the same ID.
func (s *HistoryStore) Record(_ context.Context, report *domain.SyncReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reports {
		if s.reports[i].ID == report.ID {
			s.reports[i] = *report
			return nil
		}
	}
	s.reports = append(s.reports, *report)
	return nil
}

// Recent returns up to limit reports, most recent first.
func (s *HistoryStore) Recent(_ context.Context, limit int) ([]domain.SyncReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := s.sorted()
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

// Get retrieves a report by run ID.
func (s *HistoryStore) Get(_ context.Context, id string) (*domain.SyncReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reports {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Prune keeps only the most recent keep reports.
func (s *HistoryStore) Prune(_ context.Context, keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := s.sorted()
	if len(sorted) > keep {
		sorted = sorted[:keep]
	}
	s.reports = sorted
	return nil
}

// sorted returns a copy ordered by start time, most recent first
// (caller must hold lock).
func (s *HistoryStore) sorted() []domain.SyncReport {
	out := make([]domain.SyncReport, len(s.reports))
	copy(out, s.reports)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	return out
}
