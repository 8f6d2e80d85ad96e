package mcp

import (
	"context"

	"github.com/custodia-labs/cvsync/internal/core/domain"
	"github.com/custodia-labs/cvsync/internal/core/ports/driving"
)

// mockSyncService is a mock implementation of driving.SyncService.
type mockSyncService struct {
	report     *domain.SyncReport
	cv         *domain.CV
	backup     string
	err        error
	lastDryRun bool
}

func (m *mockSyncService) Sync(_ context.Context, opts driving.SyncOptions) (*domain.SyncReport, error) {
	m.lastDryRun = opts.DryRun
	return m.report, m.err
}

func (m *mockSyncService) Revert(_ context.Context) (string, error) {
	return m.backup, m.err
}

func (m *mockSyncService) Extract(_ context.Context) (*domain.CV, error) {
	return m.cv, m.err
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	reports   []domain.SyncReport
	backups   []string
	err       error
	lastLimit int
}

func (m *mockHistoryService) Recent(_ context.Context, limit int) ([]domain.SyncReport, error) {
	m.lastLimit = limit
	return m.reports, m.err
}

func (m *mockHistoryService) Get(_ context.Context, id string) (*domain.SyncReport, error) {
	for i := range m.reports {
		if m.reports[i].ID == id {
			return &m.reports[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockHistoryService) Backups(_ context.Context) ([]string, error) {
	return m.backups, m.err
}
