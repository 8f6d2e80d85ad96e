package driven

import (
	"context"

	"github.com/custodia-labs/cvsync/internal/core/domain"
)

// SourceReader reads the LaTeX source documents.
// Any unreadable document is an error; partial sets are never returned.
type SourceReader interface {
	Read(ctx context.Context) (*domain.SourceSet, error)
}

// SourceParser extracts typed records from the source documents.
// Malformed records are dropped and counted in CV.Dropped.
type SourceParser interface {
	Parse(sources *domain.SourceSet) *domain.CV
}
