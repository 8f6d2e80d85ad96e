package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/cvsync/internal/core/domain"
	"github.com/custodia-labs/cvsync/internal/core/ports/driven"
	"github.com/custodia-labs/cvsync/internal/core/ports/driving"
	"github.com/custodia-labs/cvsync/internal/logger"
)

// Ensure SyncService implements the interface.
var _ driving.SyncService = (*SyncService)(nil)

const syncStages = 5

// SyncService coordinates a LaTeX to HTML synchronisation run.
type SyncService struct {
	reader   driven.SourceReader
	parser   driven.SourceParser
	pages    driven.PageStore
	backups  driven.BackupStore
	progress driven.ProgressReporter
	updater  *RegionUpdater

	history     driven.HistoryStore
	historyKeep int

	now func() time.Time
}

// NewSyncService creates a new sync service.
// The history store is optional - if nil, runs are not recorded.
func NewSyncService(
	reader driven.SourceReader,
	parser driven.SourceParser,
	pages driven.PageStore,
	backups driven.BackupStore,
	progress driven.ProgressReporter,
	remapper *CategoryRemapper,
	history driven.HistoryStore,
	historyKeep int,
) *SyncService {
	return &SyncService{
		reader:      reader,
		parser:      parser,
		pages:       pages,
		backups:     backups,
		progress:    progress,
		updater:     NewRegionUpdater(remapper),
		history:     history,
		historyKeep: historyKeep,
		now:         time.Now,
	}
}

// Sync extracts every record from the sources and rewrites the page.
// All sources are read and parsed before the page is loaded, so a source
// failure never leaves a half-updated page. A missing region is skipped
// with a warning; any other failure aborts before the page is written.
func (s *SyncService) Sync(ctx context.Context, opts driving.SyncOptions) (*domain.SyncReport, error) {
	report := &domain.SyncReport{
		ID:        uuid.New().String(),
		StartedAt: s.now(),
		DryRun:    opts.DryRun,
	}

	err := s.run(ctx, opts, report)

	report.EndedAt = s.now()
	report.Success = err == nil
	if err != nil {
		report.Error = err.Error()
	}
	s.record(ctx, report)

	return report, err
}

//nolint:gocyclo // Orchestration function with necessary sequential steps
func (s *SyncService) run(ctx context.Context, opts driving.SyncOptions, report *domain.SyncReport) error {
	s.progress.Banner("CV Synchronization: LaTeX → HTML")

	// 1. Backup
	s.progress.Stage(1, syncStages, "Creating backup...")
	if opts.DryRun {
		s.progress.Detail("Dry run: no backup taken")
	} else {
		name, err := s.backups.Create(ctx)
		if err != nil {
			return fmt.Errorf("create backup: %w", err)
		}
		report.Backup = name
		s.progress.Success("Backup created: %s", name)
	}

	// 2. Read every source before anything else can fail halfway
	if err := ctx.Err(); err != nil {
		return err
	}
	s.progress.Stage(2, syncStages, "Reading LaTeX files...")
	sources, err := s.reader.Read(ctx)
	if err != nil {
		return fmt.Errorf("read sources: %w", err)
	}
	s.progress.Success("LaTeX files read successfully")

	// 3. Parse
	s.progress.Stage(3, syncStages, "Parsing LaTeX content...")
	cv := s.parser.Parse(sources)
	report.Counts = domain.CountRecords(cv)
	report.Dropped = cv.Dropped
	s.reportParsed(cv)
	logger.Dump("cv", cv)

	// 4. Load page
	if err := ctx.Err(); err != nil {
		return err
	}
	s.progress.Stage(4, syncStages, "Loading HTML...")
	tree, err := s.pages.Load()
	if err != nil {
		return fmt.Errorf("load page: %w", err)
	}
	s.progress.Success("HTML loaded successfully")

	// 5. Update regions in fixed order, then write once
	s.progress.Stage(5, syncStages, "Updating HTML sections...")
	for _, region := range domain.AllRegions() {
		err := s.updater.Apply(tree, region, cv)
		switch {
		case errors.Is(err, domain.ErrRegionNotFound):
			report.SkippedRegions = append(report.SkippedRegions, region)
			s.progress.Warn("Warning: %s not found: %v", region.Description(), err)
		case err != nil:
			return fmt.Errorf("update %s: %w", region, err)
		default:
			s.progress.Success("%s updated", region.Description())
		}
	}

	if opts.DryRun {
		s.progress.Detail("Dry run: %s not written", filepath.Base(s.pages.Path()))
	} else if err := s.pages.Save(tree); err != nil {
		return fmt.Errorf("save page: %w", err)
	}

	s.progress.Done("Synchronization complete!")
	return nil
}

func (s *SyncService) reportParsed(cv *domain.CV) {
	s.progress.Detail("Personal info: %s", cv.Personal.FullName())
	s.progress.Detail("Experience entries: %d", len(cv.Experience))
	s.progress.Detail("Education entries: %d", len(cv.Education))
	s.progress.Detail("Skill categories: %d", len(cv.Skills))
	s.progress.Detail("Certificates: %d", len(cv.Credentials))
	s.progress.Detail("Interest items: %d", len(cv.Interests))

	if d := cv.Dropped; d.Total() > 0 {
		s.progress.Warn("Dropped %d malformed records (experience %d, education %d, skills %d, certificates %d)",
			d.Total(), d.Experience, d.Education, d.Skills, d.Credentials)
	}
}

// record stores the report in history. History problems never fail a sync.
func (s *SyncService) record(ctx context.Context, report *domain.SyncReport) {
	if s.history == nil {
		return
	}
	// The run may have been cancelled; the report is still worth keeping.
	ctx = context.WithoutCancel(ctx)

	if err := s.history.Record(ctx, report); err != nil {
		logger.Warn("record sync history: %v", err)
		return
	}
	if s.historyKeep > 0 {
		if err := s.history.Prune(ctx, s.historyKeep); err != nil {
			logger.Warn("prune sync history: %v", err)
		}
	}
}

// Revert restores the page from the most recent backup.
func (s *SyncService) Revert(ctx context.Context) (string, error) {
	s.progress.Banner("CV Revert: Restoring from Latest Backup")

	name, err := s.backups.Latest(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoBackup) {
			s.progress.Fail("No backup files found")
		}
		return "", err
	}
	s.progress.Success("Found backup: %s", name)

	if err := s.backups.Restore(ctx, name); err != nil {
		return "", fmt.Errorf("restore backup: %w", err)
	}
	s.progress.Success("Restored %s from %s", filepath.Base(s.pages.Path()), name)

	s.progress.Done("Revert complete!")
	return name, nil
}

// Extract reads and parses the sources without touching the page.
func (s *SyncService) Extract(ctx context.Context) (*domain.CV, error) {
	sources, err := s.reader.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}

	cv := s.parser.Parse(sources)
	logger.Dump("cv", cv)
	return cv, nil
}
