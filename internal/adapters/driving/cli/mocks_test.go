package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/custodia-labs/cvsync/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/cvsync/internal/core/domain"
	"github.com/custodia-labs/cvsync/internal/core/ports/driving"
)

// mockSyncService implements driving.SyncService for testing.
type mockSyncService struct {
	report  *domain.SyncReport
	cv      *domain.CV
	backup  string
	err     error
	synced  int
	dryRun  bool
	reverts int
	lastCtx context.Context
}

func (m *mockSyncService) Sync(ctx context.Context, opts driving.SyncOptions) (*domain.SyncReport, error) {
	m.lastCtx = ctx
	m.synced++
	m.dryRun = opts.DryRun
	if m.report == nil {
		m.report = &domain.SyncReport{ID: "run-1", Success: m.err == nil}
	}
	return m.report, m.err
}

func (m *mockSyncService) Revert(_ context.Context) (string, error) {
	m.reverts++
	return m.backup, m.err
}

func (m *mockSyncService) Extract(_ context.Context) (*domain.CV, error) {
	return m.cv, m.err
}

// mockHistoryService implements driving.HistoryService for testing.
type mockHistoryService struct {
	reports []domain.SyncReport
	backups []string
	err     error
	limit   int
}

func (m *mockHistoryService) Recent(_ context.Context, limit int) ([]domain.SyncReport, error) {
	m.limit = limit
	return m.reports, m.err
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.SyncReport, error) {
	return nil, domain.ErrNotFound
}

func (m *mockHistoryService) Backups(_ context.Context) ([]string, error) {
	return m.backups, nil
}

// setupCLITest swaps in mocks, resets flag state left by earlier tests and
// returns a cleanup func.
func setupCLITest(t *testing.T, sync *mockSyncService, history *mockHistoryService) func() {
	t.Helper()

	oldSync, oldHistory, oldConfig, oldSettings := syncService, historyService, configStore, settings
	oldBootstrap := bootstrap

	bootstrap = nil
	syncService = nil
	historyService = nil
	if sync != nil {
		syncService = sync
	}
	if history != nil {
		historyService = history
	}
	configStore = memory.NewConfigStore()
	settings = domain.DefaultSettings(t.TempDir())

	revertFlag, dryRunFlag = false, false
	historyLimit = 10
	extractFormat = "json"
	configInitForce = false

	return func() {
		syncService, historyService, configStore, settings = oldSync, oldHistory, oldConfig, oldSettings
		bootstrap = oldBootstrap
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}
}

// execute runs the root command with args and returns stdout.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(append([]string{}, args...))
	err := Execute(context.Background())
	return buf.String(), err
}
