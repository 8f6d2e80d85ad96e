package services

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/custodia-labs/cvsync/internal/core/domain"
	"github.com/custodia-labs/cvsync/internal/core/ports/driven"
)

// Config keys for settings storage.
const (
	keySourceDir             = "source.dir"
	keySourceMain            = "source.main"
	keySourceExperience      = "source.experience"
	keySourceEducation       = "source.education"
	keySourceSkills          = "source.skills"
	keySourceCertificates    = "source.certificates"
	keySourceExtracurricular = "source.extracurricular"
	keyPagePath              = "page.path"
	keyBackupDir             = "backup.dir"
	keyHistoryEnabled        = "history.enabled"
	keyHistoryPath           = "history.path"
	keyHistoryKeep           = "history.keep"
	keyWatchDebounce         = "watch.debounce"
	keyWatchMinInterval      = "watch.min_interval"
	keyDefaultBucket         = "skills.default_bucket"
	tableCategories          = "categories"
)

// LoadSettings resolves the effective settings for root from store.
// Keys absent from store keep their defaults; relative paths are resolved
// against root, except source document paths which are relative to source.dir.
func LoadSettings(store driven.ConfigStore, root string) (domain.Settings, error) {
	s := domain.DefaultSettings(root)

	if v := store.GetString(keySourceDir); v != "" {
		s.Source.Dir = resolve(root, v)
	}
	stringKey(store, keySourceMain, &s.Source.Main)
	stringKey(store, keySourceExperience, &s.Source.Experience)
	stringKey(store, keySourceEducation, &s.Source.Education)
	stringKey(store, keySourceSkills, &s.Source.Skills)
	stringKey(store, keySourceCertificates, &s.Source.Certificates)
	stringKey(store, keySourceExtracurricular, &s.Source.Extracurricular)

	if v := store.GetString(keyPagePath); v != "" {
		s.PagePath = resolve(root, v)
		s.BackupDir = filepath.Dir(s.PagePath)
	}
	if v := store.GetString(keyBackupDir); v != "" {
		s.BackupDir = resolve(root, v)
	}

	if _, ok := store.Get(keyHistoryEnabled); ok {
		s.History.Enabled = store.GetBool(keyHistoryEnabled)
	}
	if v := store.GetString(keyHistoryPath); v != "" {
		s.History.Path = resolve(root, v)
	}
	if _, ok := store.Get(keyHistoryKeep); ok {
		keep := store.GetInt(keyHistoryKeep)
		if keep < 1 {
			return s, fmt.Errorf("%w: %s must be at least 1", domain.ErrInvalidInput, keyHistoryKeep)
		}
		s.History.Keep = keep
	}

	var err error
	if s.Watch.Debounce, err = durationKey(store, keyWatchDebounce, s.Watch.Debounce); err != nil {
		return s, err
	}
	if s.Watch.MinInterval, err = durationKey(store, keyWatchMinInterval, s.Watch.MinInterval); err != nil {
		return s, err
	}

	stringKey(store, keyDefaultBucket, &s.DefaultBucket)
	for category, bucket := range store.GetStringMap(tableCategories) {
		s.Categories[category] = bucket
	}

	return s, nil
}

// SaveSettings writes every setting of s to store as it would appear in a
// hand-written config file, with paths relative to s.Root where possible.
func SaveSettings(store driven.ConfigStore, s domain.Settings) error {
	values := map[string]any{
		keySourceDir:             relative(s.Root, s.Source.Dir),
		keySourceMain:            filepath.ToSlash(s.Source.Main),
		keySourceExperience:      filepath.ToSlash(s.Source.Experience),
		keySourceEducation:       filepath.ToSlash(s.Source.Education),
		keySourceSkills:          filepath.ToSlash(s.Source.Skills),
		keySourceCertificates:    filepath.ToSlash(s.Source.Certificates),
		keySourceExtracurricular: filepath.ToSlash(s.Source.Extracurricular),
		keyPagePath:              relative(s.Root, s.PagePath),
		keyBackupDir:             relative(s.Root, s.BackupDir),
		keyHistoryEnabled:        s.History.Enabled,
		keyHistoryPath:           relative(s.Root, s.History.Path),
		keyHistoryKeep:           s.History.Keep,
		keyWatchDebounce:         s.Watch.Debounce.String(),
		keyWatchMinInterval:      s.Watch.MinInterval.String(),
		keyDefaultBucket:         s.DefaultBucket,
	}
	for category, bucket := range s.Categories {
		values[tableCategories+"."+category] = bucket
	}

	for key, value := range values {
		if err := store.Set(key, value); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	return nil
}

func stringKey(store driven.ConfigStore, key string, dst *string) {
	if v := store.GetString(key); v != "" {
		*dst = v
	}
}

func durationKey(store driven.ConfigStore, key string, def time.Duration) (time.Duration, error) {
	v := store.GetString(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def, fmt.Errorf("%w: %s: invalid duration %q", domain.ErrInvalidInput, key, v)
	}
	return d, nil
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func relative(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
