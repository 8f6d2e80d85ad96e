package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountRecords(t *testing.T) {
	cv := &CV{
		Experience:  make([]Entry, 3),
		Education:   make([]Entry, 2),
		Skills:      make([]SkillRecord, 4),
		Credentials: make([]CredentialRecord, 1),
		Interests:   []string{"a", "b"},
	}

	assert.Equal(t, RecordCounts{Experience: 3, Education: 2, Skills: 4, Credentials: 1, Interests: 2}, CountRecords(cv))
	assert.Equal(t, RecordCounts{}, CountRecords(nil))
}

func TestSyncReport_Duration(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 3*time.Second, SyncReport{StartedAt: start, EndedAt: start.Add(3 * time.Second)}.Duration())
	assert.Equal(t, time.Duration(0), SyncReport{StartedAt: start}.Duration())
}
