// Package cli provides the cobra command tree for cvsync.
//
// Running cvsync with no subcommand synchronises the CV page from the LaTeX
// sources; --revert restores the most recent page backup instead.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cvsync/internal/core/domain"
	"github.com/custodia-labs/cvsync/internal/core/ports/driven"
	"github.com/custodia-labs/cvsync/internal/core/ports/driving"
	"github.com/custodia-labs/cvsync/internal/logger"
)

// version is set at build time.
var version = "dev"

// Services wired by Bootstrap. Tests assign these directly.
var (
	syncService    driving.SyncService
	historyService driving.HistoryService
	configStore    driven.ConfigStore
	settings       domain.Settings
)

// Global flags.
var (
	rootDir    string
	configPath string
	verbose    bool
	revertFlag bool
	dryRunFlag bool
)

// Command annotations read by the bootstrap step.
const (
	// annotationBootstrap selects how much the command needs wired.
	annotationBootstrap = "cvsync/bootstrap"

	bootstrapNone   = "none"
	bootstrapConfig = "config"

	// annotationProgress set to "stderr" moves progress off stdout.
	annotationProgress = "cvsync/progress"
)

// Options are resolved from global flags and passed to Bootstrap.
type Options struct {
	// Root is the project root directory.
	Root string

	// ConfigPath is an explicit config file, or empty for the default.
	ConfigPath string

	// ConfigOnly skips everything but loading the configuration.
	ConfigOnly bool

	// Progress receives the numbered stage output.
	Progress io.Writer
}

// Services is what Bootstrap produces.
type Services struct {
	Sync     driving.SyncService
	History  driving.HistoryService
	Config   driven.ConfigStore
	Settings domain.Settings

	// Close releases resources such as the history database. May be nil.
	Close func() error
}

// BootstrapFunc builds the services for one invocation.
type BootstrapFunc func(opts Options) (*Services, error)

var (
	bootstrap BootstrapFunc
	closer    func() error
)

var rootCmd = &cobra.Command{
	Use:   "cvsync",
	Short: "Synchronise a LaTeX CV into its HTML page",
	Long: `cvsync reads the LaTeX CV sources and rewrites the matching sections
of the CV web page: meta tags, header, about text, experience, education,
skills, trainings and interests. Everything else on the page is left alone.

A timestamped backup of the page is written before every sync.

Examples:
  # Sync the page
  cvsync

  # Show what would change without writing anything
  cvsync --dry-run

  # Restore the page from the most recent backup
  cvsync --revert`,
	Args:               cobra.NoArgs,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "project root directory")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default <root>/.sync/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().BoolVar(&revertFlag, "revert", false, "restore the page from the latest backup")
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "apply updates in memory only; take no backup and write nothing")
}

// Execute runs the root command; ctx reaches every command's RunE.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap installs the function that wires services before a command runs.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	mode := cmd.Annotations[annotationBootstrap]
	if bootstrap == nil || mode == bootstrapNone {
		return nil
	}

	progress := cmd.OutOrStdout()
	if cmd.Annotations[annotationProgress] == "stderr" {
		progress = cmd.ErrOrStderr()
	}

	svc, err := bootstrap(Options{
		Root:       rootDir,
		ConfigPath: configPath,
		ConfigOnly: mode == bootstrapConfig,
		Progress:   progress,
	})
	if err != nil {
		return err
	}

	syncService = svc.Sync
	historyService = svc.History
	configStore = svc.Config
	settings = svc.Settings
	closer = svc.Close
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if closer == nil {
		return nil
	}
	err := closer()
	closer = nil
	return err
}

func runRoot(cmd *cobra.Command, _ []string) error {
	if syncService == nil {
		return errors.New("sync service not configured")
	}
	if revertFlag && dryRunFlag {
		return fmt.Errorf("%w: --revert and --dry-run cannot be combined", domain.ErrInvalidInput)
	}

	ctx := cmd.Context()

	if revertFlag {
		name, err := syncService.Revert(ctx)
		if err != nil {
			return err
		}
		logger.Debug("restored from %s", name)
		return nil
	}

	report, err := syncService.Sync(ctx, driving.SyncOptions{DryRun: dryRunFlag})
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	logger.Debug("run %s finished in %s", report.ID, report.Duration())
	return nil
}
