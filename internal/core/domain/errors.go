package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSourceUnreadable indicates a required LaTeX source could not be read.
	// It is fatal: the run aborts before the page is touched.
	ErrSourceUnreadable = errors.New("source document unreadable")

	// ErrPageUnreadable indicates the destination page could not be loaded or parsed.
	ErrPageUnreadable = errors.New("destination page unreadable")

	// ErrRegionNotFound indicates an anchor or container is missing from the page.
	// The affected region is skipped; the rest of the run continues.
	ErrRegionNotFound = errors.New("destination region not found")

	// ErrNoBackup indicates a revert was requested but no backup exists.
	ErrNoBackup = errors.New("no backup files found")

	// ErrHistoryUnavailable indicates the run history store is not configured.
	ErrHistoryUnavailable = errors.New("sync history unavailable")
)
