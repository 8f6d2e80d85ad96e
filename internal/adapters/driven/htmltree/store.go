package htmltree

import (
	"bytes"
	"fmt"
	"os"

	"github.com/custodia-labs/cvsync/internal/core/domain"
	"github.com/custodia-labs/cvsync/internal/core/ports/driven"
	"github.com/custodia-labs/cvsync/internal/fileutil"
)

// Ensure FileStore implements the interface.
var _ driven.PageStore = (*FileStore)(nil)

// FileStore loads and saves an HTML page on the local filesystem.
type FileStore struct {
	path string
}

// NewFileStore creates a page store for the HTML file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and parses the page.
func (s *FileStore) Load() (driven.DocumentTree, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPageUnreadable, err)
	}
	defer f.Close()

	return Parse(f)
}

// Save renders tree fully in memory and then swaps the file in whole, so
// neither a render failure nor an interrupted write leaves a truncated page.
func (s *FileStore) Save(tree driven.DocumentTree) error {
	var buf bytes.Buffer
	if err := tree.Render(&buf); err != nil {
		return err
	}

	if err := fileutil.WriteAtomic(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}

// Path returns the page location.
func (s *FileStore) Path() string {
	return s.path
}
