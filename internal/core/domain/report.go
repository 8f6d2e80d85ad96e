package domain

import "time"

// SyncReport describes the outcome of one synchronisation run.
type SyncReport struct {
	// ID uniquely identifies the run.
	ID string `json:"id" yaml:"id"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// EndedAt is when the run finished, successfully or not.
	EndedAt time.Time `json:"ended_at" yaml:"ended_at"`

	// DryRun is true when the page was not written.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// Backup is the file name of the backup taken before mutation.
	Backup string `json:"backup,omitempty" yaml:"backup,omitempty"`

	// Counts holds the number of records extracted per category.
	Counts RecordCounts `json:"counts" yaml:"counts"`

	// Dropped holds the number of malformed records dropped per category.
	Dropped DropCounts `json:"dropped" yaml:"dropped"`

	// SkippedRegions lists regions whose anchors were missing from the page.
	SkippedRegions []Region `json:"skipped_regions,omitempty" yaml:"skipped_regions,omitempty"`

	// Success indicates whether the run completed.
	Success bool `json:"success" yaml:"success"`

	// Error contains the failure message if Success is false.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RecordCounts counts extracted records per category.
type RecordCounts struct {
	Experience  int `json:"experience" yaml:"experience"`
	Education   int `json:"education" yaml:"education"`
	Skills      int `json:"skills" yaml:"skills"`
	Credentials int `json:"credentials" yaml:"credentials"`
	Interests   int `json:"interests" yaml:"interests"`
}

// CountRecords tallies the records held by a CV.
func CountRecords(cv *CV) RecordCounts {
	if cv == nil {
		return RecordCounts{}
	}
	return RecordCounts{
		Experience:  len(cv.Experience),
		Education:   len(cv.Education),
		Skills:      len(cv.Skills),
		Credentials: len(cv.Credentials),
		Interests:   len(cv.Interests),
	}
}

// Duration returns how long the run took.
func (r SyncReport) Duration() time.Duration {
	if r.EndedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}
