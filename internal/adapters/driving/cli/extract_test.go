package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/cvsync/internal/core/domain"
)

func sampleCV() *domain.CV {
	return &domain.CV{
		Personal: domain.PersonalInfo{FirstName: "Ada", LastName: "Lovelace", Position: "Analyst"},
		Experience: []domain.Entry{
			{Title: "Engineer", Org: "R&D Ltd", Dates: "2020 -- 2022", Items: []string{"Built <things>"}},
		},
		Skills:    []domain.SkillRecord{{Category: "Languages", Skills: "Go, SQL"}},
		Interests: []string{"Chess"},
	}
}

func TestExtractCmd_JSON(t *testing.T) {
	cleanup := setupCLITest(t, &mockSyncService{cv: sampleCV()}, nil)
	defer cleanup()

	out, err := execute("extract")
	require.NoError(t, err)

	var got domain.CV
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, *sampleCV(), got)
	assert.Contains(t, out, "R&D Ltd")
	assert.Contains(t, out, "Built <things>")
}

func TestExtractCmd_YAML(t *testing.T) {
	cleanup := setupCLITest(t, &mockSyncService{cv: sampleCV()}, nil)
	defer cleanup()

	out, err := execute("extract", "--format", "yaml")
	require.NoError(t, err)

	var got domain.CV
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Lovelace", got.Personal.LastName)
	assert.Equal(t, "Go, SQL", got.Skills[0].Skills)
	assert.Contains(t, out, "first_name: Ada")
}

func TestExtractCmd_UnknownFormat(t *testing.T) {
	cleanup := setupCLITest(t, &mockSyncService{cv: sampleCV()}, nil)
	defer cleanup()

	_, err := execute("extract", "--format", "xml")
	assert.ErrorContains(t, err, `unknown format "xml"`)
}

func TestExtractCmd_SourceError(t *testing.T) {
	cleanup := setupCLITest(t, &mockSyncService{err: domain.ErrSourceUnreadable}, nil)
	defer cleanup()

	_, err := execute("extract")
	assert.ErrorIs(t, err, domain.ErrSourceUnreadable)
}
