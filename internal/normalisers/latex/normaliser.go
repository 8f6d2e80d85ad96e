package latex

import (
	"github.com/custodia-labs/cvsync/internal/core/domain"
	"github.com/custodia-labs/cvsync/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.SourceParser = (*Normaliser)(nil)

// Normaliser turns a full set of LaTeX sources into a CV.
type Normaliser struct{}

// New creates a new LaTeX normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Parse runs every extractor over its dedicated source document.
func (n *Normaliser) Parse(sources *domain.SourceSet) *domain.CV {
	if sources == nil {
		return &domain.CV{}
	}

	experience := ParseEntries(sources.Experience)
	education := ParseEntries(sources.Education)
	skills := ParseSkills(sources.Skills)
	credentials := ParseCredentials(sources.Certificates)

	return &domain.CV{
		Personal:    ParsePersonalInfo(sources.Main),
		Experience:  experience.Records,
		Education:   education.Records,
		Skills:      skills.Records,
		Credentials: credentials.Records,
		Interests:   ParseInterests(sources.Extracurricular),
		Dropped: domain.DropCounts{
			Experience:  experience.Dropped,
			Education:   education.Dropped,
			Skills:      skills.Dropped,
			Credentials: credentials.Dropped,
		},
	}
}
