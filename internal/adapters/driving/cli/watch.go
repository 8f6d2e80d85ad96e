package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cvsync/internal/adapters/driving/watch"
	"github.com/custodia-labs/cvsync/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Sync whenever a LaTeX source changes",
	Long: `Watches the LaTeX source directories and syncs the page after each burst
of .tex changes. Syncs are spaced by watch.min_interval. Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if syncService == nil {
		return errors.New("sync service not configured")
	}

	dirs := settings.Source.Dirs()
	w := watch.New(syncService, dirs, settings.Watch)
	w.OnResult(func(_ *domain.SyncReport, err error) {
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Sync failed: %v\n", err)
		}
		cmd.Println("Watching for changes...")
	})

	cmd.Printf("Watching %d director%s for changes (Ctrl+C to stop)...\n", len(dirs), plural(len(dirs), "y", "ies"))
	return w.Run(cmd.Context())
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
