package driven

import "context"

// BackupStore keeps timestamped copies of the destination page.
type BackupStore interface {
	// Create copies the page to a new timestamped backup and returns its name.
	Create(ctx context.Context) (string, error)

	// List returns backup names in ascending (oldest first) order.
	List(ctx context.Context) ([]string, error)

	// Latest returns the most recent backup name.
	// Returns domain.ErrNoBackup when none exists.
	Latest(ctx context.Context) (string, error)

	// Restore overwrites the page with the named backup verbatim.
	Restore(ctx context.Context, name string) error
}
