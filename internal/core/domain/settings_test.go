package domain

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	root := filepath.FromSlash("/home/jane/site")
	s := DefaultSettings(root)

	assert.Equal(t, root, s.Root)
	assert.Equal(t, filepath.Join(root, ".awesome-CV", "myCV"), s.Source.Dir)
	assert.Equal(t, filepath.Join(root, "index.html"), s.PagePath)
	assert.Equal(t, root, s.BackupDir)
	assert.True(t, s.History.Enabled)
	assert.Equal(t, filepath.Join(root, ".sync", "history.db"), s.History.Path)
	assert.Equal(t, 50, s.History.Keep)
	assert.Equal(t, 500*time.Millisecond, s.Watch.Debounce)
	assert.Equal(t, 2*time.Second, s.Watch.MinInterval)
	assert.Equal(t, DefaultBucket, s.DefaultBucket)
	assert.Equal(t, DefaultCategoryMap(), s.Categories)
}

func TestDefaultSettings_CategoriesAreFreshCopies(t *testing.T) {
	a := DefaultSettings("/a")
	a.Categories["Cloud"] = "Technical Skills"

	b := DefaultSettings("/a")
	_, ok := b.Categories["Cloud"]
	assert.False(t, ok)
}

func TestConfigPath(t *testing.T) {
	root := filepath.FromSlash("/home/jane/site")
	assert.Equal(t, filepath.Join(root, ".sync", "config.toml"), ConfigPath(root))
}

func TestSourceSettings_Paths(t *testing.T) {
	s := DefaultSettings(filepath.FromSlash("/site")).Source
	dir := filepath.Join(filepath.FromSlash("/site"), ".awesome-CV", "myCV")

	paths := s.Paths()

	assert.Len(t, paths, len(SourceRoles()))
	assert.Equal(t, filepath.Join(dir, "cv.tex"), paths["main"])
	assert.Equal(t, filepath.Join(dir, "cv", "experience.tex"), paths["experience"])
	assert.Equal(t, filepath.Join(dir, "cv", "extracurricular.tex"), paths["extracurricular"])
	for _, role := range SourceRoles() {
		assert.Contains(t, paths, role)
	}
}

func TestSourceSettings_PathsKeepsAbsoluteDocuments(t *testing.T) {
	s := DefaultSettings(filepath.FromSlash("/site")).Source
	main := filepath.Join(t.TempDir(), "main.tex")
	s.Main = main

	paths := s.Paths()

	assert.Equal(t, main, paths["main"])
	assert.Equal(t, filepath.Join(s.Dir, s.Experience), paths["experience"])
	assert.Contains(t, s.Dirs(), filepath.Dir(main))
}

func TestSourceSettings_Dirs(t *testing.T) {
	s := DefaultSettings(filepath.FromSlash("/site")).Source
	dir := filepath.Join(filepath.FromSlash("/site"), ".awesome-CV", "myCV")

	assert.Equal(t, []string{dir, filepath.Join(dir, "cv")}, s.Dirs())
}
