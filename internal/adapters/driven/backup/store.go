package backup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/custodia-labs/cvsync/internal/core/domain"
	"github.com/custodia-labs/cvsync/internal/core/ports/driven"
	"github.com/custodia-labs/cvsync/internal/fileutil"
	"github.com/custodia-labs/cvsync/internal/logger"
)

// Ensure FileStore implements the interface.
var _ driven.BackupStore = (*FileStore)(nil)

// timestampLayout is the backup name timestamp, local time.
const timestampLayout = "20060102-150405"

// FileStore writes backups of a single page into a directory.
type FileStore struct {
	pagePath string
	dir      string
	pattern  *regexp.Regexp
	now      func() time.Time
}

// NewFileStore creates a backup store for the page at pagePath. An empty
// dir places backups beside the page.
func NewFileStore(pagePath, dir string) *FileStore {
	if dir == "" {
		dir = filepath.Dir(pagePath)
	}

	base, ext := splitName(filepath.Base(pagePath))
	pattern := regexp.MustCompile(
		"^" + regexp.QuoteMeta(base) + `-\d{8}-\d{6}` + regexp.QuoteMeta(ext) + `\.backup$`,
	)

	return &FileStore{
		pagePath: pagePath,
		dir:      dir,
		pattern:  pattern,
		now:      time.Now,
	}
}

// Create copies the page to a new backup and returns the backup name.
// A backup already taken within the same second is kept as is.
func (s *FileStore) Create(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.pagePath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrPageUnreadable, err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	name := s.nameAt(s.now())
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		logger.Debug("backup %s already exists, keeping it", name)
		return name, nil
	}
	if err != nil {
		return "", fmt.Errorf("create backup: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", fmt.Errorf("write backup: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}

	logger.Debug("backup written to %s", filepath.Join(s.dir, name))
	return name, nil
}

// List returns backup names, oldest first.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() && s.pattern.MatchString(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Latest returns the lexically last backup name.
func (s *FileStore) Latest(ctx context.Context) (string, error) {
	names, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", domain.ErrNoBackup
	}
	return names[len(names)-1], nil
}

// Restore overwrites the page with the named backup, byte for byte.
func (s *FileStore) Restore(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.pattern.MatchString(name) {
		return fmt.Errorf("%w: %q is not a backup of %s", domain.ErrInvalidInput, name, filepath.Base(s.pagePath))
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", domain.ErrNoBackup, name)
	}
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	if err := fileutil.WriteAtomic(s.pagePath, data, 0644); err != nil {
		return fmt.Errorf("restore page: %w", err)
	}
	return nil
}

// Dir returns the backup directory.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) nameAt(t time.Time) string {
	base, ext := splitName(filepath.Base(s.pagePath))
	return base + "-" + t.Format(timestampLayout) + ext + ".backup"
}

// splitName splits "index.html" into "index" and ".html".
func splitName(name string) (string, string) {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}
