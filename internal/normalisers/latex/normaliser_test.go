package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cvsync/internal/core/domain"
	"github.com/custodia-labs/cvsync/internal/core/ports/driven"
)

func TestNew(t *testing.T) {
	n := New()
	require.NotNil(t, n)
	var _ driven.SourceParser = n
}

func TestNormaliser_Parse(t *testing.T) {
	sources := &domain.SourceSet{
		Main:            mainTeX,
		Experience:      experienceTeX,
		Education:       `\cventry{MSc Computer Science}{TU Munich}{Munich}{2014 - 2016}{\item{Thesis on parsers}} \cventry{bad}`,
		Skills:          `\cvskill{Languages}{English, German}`,
		Certificates:    `\cvhonor{AWS SA}{Amazon}{A1}{2022}`,
		Extracurricular: `\item{Chess}`,
	}

	cv := New().Parse(sources)

	require.NotNil(t, cv)
	assert.Equal(t, "Jane", cv.Personal.FirstName)
	assert.Len(t, cv.Experience, 2)
	require.Len(t, cv.Education, 1)
	assert.Equal(t, "TU Munich", cv.Education[0].Org)
	assert.Equal(t, []domain.SkillRecord{{Category: "Languages", Skills: "English, German"}}, cv.Skills)
	assert.Equal(t, "AWS SA", cv.Credentials[0].Name)
	assert.Equal(t, []string{"Chess"}, cv.Interests)
	assert.Equal(t, domain.DropCounts{Education: 1}, cv.Dropped)
}

func TestNormaliser_ParseNil(t *testing.T) {
	cv := New().Parse(nil)
	require.NotNil(t, cv)
	assert.Empty(t, cv.Experience)
}
