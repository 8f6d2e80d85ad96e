// Package source reads the LaTeX CV documents from the local filesystem.
package source

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/custodia-labs/cvsync/internal/core/domain"
	"github.com/custodia-labs/cvsync/internal/core/ports/driven"
	"github.com/custodia-labs/cvsync/internal/logger"
)

// Ensure FileReader implements the interface.
var _ driven.SourceReader = (*FileReader)(nil)

// FileReader reads the six source documents named by SourceSettings.
type FileReader struct {
	settings domain.SourceSettings
}

// NewFileReader creates a reader for the given source layout.
func NewFileReader(settings domain.SourceSettings) *FileReader {
	return &FileReader{settings: settings}
}

// Read loads every document. It fails on the first missing, unreadable or
// non-UTF-8 file and never returns a partial set.
func (r *FileReader) Read(ctx context.Context) (*domain.SourceSet, error) {
	paths := r.settings.Paths()
	texts := make(map[string]string, len(paths))

	for _, role := range domain.SourceRoles() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := paths[role]
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrSourceUnreadable, role, err)
		}
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("%w: %s: %s is not valid UTF-8", domain.ErrSourceUnreadable, role, path)
		}

		logger.Debug("read %s (%d bytes)", path, len(data))
		texts[role] = string(data)
	}

	return &domain.SourceSet{
		Main:            texts["main"],
		Experience:      texts["experience"],
		Education:       texts["education"],
		Skills:          texts["skills"],
		Certificates:    texts["certificates"],
		Extracurricular: texts["extracurricular"],
	}, nil
}
