package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent sync runs",
	Long: `Lists recent sync runs, most recent first, followed by the page backups
available for --revert.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of runs to show (0 = all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	ctx := cmd.Context()

	reports, err := historyService.Recent(ctx, historyLimit)
	if err != nil {
		return err
	}

	if len(reports) == 0 {
		cmd.Println("No sync runs recorded.")
	} else {
		cmd.Printf("Recent syncs (%d):\n\n", len(reports))
		for i := range reports {
			r := &reports[i]
			result := "ok"
			switch {
			case !r.Success:
				result = "failed"
			case r.DryRun:
				result = "dry-run"
			}

			cmd.Printf("  %s  %s  %-7s  %6s\n",
				shortID(r.ID),
				r.StartedAt.Local().Format("2006-01-02 15:04:05"),
				result,
				r.Duration().Round(time.Millisecond),
			)
			cmd.Printf("      experience %d, education %d, skills %d, certificates %d, interests %d\n",
				r.Counts.Experience, r.Counts.Education, r.Counts.Skills,
				r.Counts.Credentials, r.Counts.Interests)
			if n := r.Dropped.Total(); n > 0 {
				cmd.Printf("      dropped %d malformed records\n", n)
			}
			if len(r.SkippedRegions) > 0 {
				names := make([]string, len(r.SkippedRegions))
				for j, region := range r.SkippedRegions {
					names[j] = region.String()
				}
				cmd.Printf("      skipped: %s\n", strings.Join(names, ", "))
			}
			if r.Backup != "" {
				cmd.Printf("      backup: %s\n", r.Backup)
			}
			if r.Error != "" {
				cmd.Printf("      error: %s\n", r.Error)
			}
		}
	}

	backups, err := historyService.Backups(ctx)
	if err != nil {
		return fmt.Errorf("listing backups: %w", err)
	}

	cmd.Println()
	if len(backups) == 0 {
		cmd.Println("No backups found.")
		return nil
	}
	cmd.Printf("Backups (%d), latest: %s\n", len(backups), backups[len(backups)-1])
	return nil
}

// shortID trims a run ID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
