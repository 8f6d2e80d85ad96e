package domain

import (
	"path/filepath"
	"time"
)

// ConfigDirName is the per-project directory holding config and history.
const ConfigDirName = ".sync"

// ConfigFileName is the TOML configuration file inside ConfigDirName.
const ConfigFileName = "config.toml"

// SourceSettings locates the six LaTeX source documents.
// File paths are relative to Dir.
type SourceSettings struct {
	// Dir is the LaTeX project directory.
	Dir string

	// Main holds the header fields (name, position, quote).
	Main string

	// Experience holds entry-with-bullets records.
	Experience string

	// Education holds entry-with-bullets records.
	Education string

	// Skills holds category/value records.
	Skills string

	// Certificates holds credential records.
	Certificates string

	// Extracurricular holds the freeform interests list.
	Extracurricular string
}

// Paths returns the absolute path of every source document, keyed by role.
func (s SourceSettings) Paths() map[string]string {
	return map[string]string{
		"main":            s.path(s.Main),
		"experience":      s.path(s.Experience),
		"education":       s.path(s.Education),
		"skills":          s.path(s.Skills),
		"certificates":    s.path(s.Certificates),
		"extracurricular": s.path(s.Extracurricular),
	}
}

// path places a relative document under Dir and keeps absolute ones as given.
func (s SourceSettings) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.Dir, name)
}

// Dirs returns the distinct directories containing source documents.
func (s SourceSettings) Dirs() []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, role := range SourceRoles() {
		dir := filepath.Dir(s.Paths()[role])
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// SourceRoles returns the source document roles in reading order.
func SourceRoles() []string {
	return []string{"main", "experience", "education", "skills", "certificates", "extracurricular"}
}

// HistorySettings controls the run history store.
type HistorySettings struct {
	// Enabled turns history recording on.
	Enabled bool

	// Path is the SQLite database file.
	Path string

	// Keep is the number of runs retained after pruning.
	Keep int
}

// WatchSettings controls the watch command.
type WatchSettings struct {
	// Debounce is the quiet period after a change before syncing.
	Debounce time.Duration

	// MinInterval is the minimum spacing between two syncs.
	MinInterval time.Duration
}

// Settings is the fully resolved configuration for a project root.
type Settings struct {
	// Root is the project root directory.
	Root string

	// Source locates the LaTeX documents.
	Source SourceSettings

	// PagePath is the destination HTML document.
	PagePath string

	// BackupDir is where timestamped backups are kept.
	BackupDir string

	// History controls run recording.
	History HistorySettings

	// Watch controls the watch command.
	Watch WatchSettings

	// Categories maps source skill categories to destination buckets.
	Categories map[string]string

	// DefaultBucket receives skill categories absent from Categories.
	DefaultBucket string
}

// DefaultSettings returns the default layout rooted at root.
func DefaultSettings(root string) Settings {
	page := filepath.Join(root, "index.html")
	return Settings{
		Root: root,
		Source: SourceSettings{
			Dir:             filepath.Join(root, ".awesome-CV", "myCV"),
			Main:            "cv.tex",
			Experience:      filepath.Join("cv", "experience.tex"),
			Education:       filepath.Join("cv", "education.tex"),
			Skills:          filepath.Join("cv", "skills.tex"),
			Certificates:    filepath.Join("cv", "certificates.tex"),
			Extracurricular: filepath.Join("cv", "extracurricular.tex"),
		},
		PagePath:  page,
		BackupDir: filepath.Dir(page),
		History: HistorySettings{
			Enabled: true,
			Path:    filepath.Join(root, ConfigDirName, "history.db"),
			Keep:    50,
		},
		Watch: WatchSettings{
			Debounce:    500 * time.Millisecond,
			MinInterval: 2 * time.Second,
		},
		Categories:    DefaultCategoryMap(),
		DefaultBucket: DefaultBucket,
	}
}

// ConfigPath returns the default config file location for root.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigDirName, ConfigFileName)
}
