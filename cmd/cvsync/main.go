// Command cvsync keeps a CV web page in step with its LaTeX sources.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/cvsync/internal/adapters/driven/backup"
	"github.com/custodia-labs/cvsync/internal/adapters/driven/config/file"
	"github.com/custodia-labs/cvsync/internal/adapters/driven/htmltree"
	"github.com/custodia-labs/cvsync/internal/adapters/driven/progress"
	"github.com/custodia-labs/cvsync/internal/adapters/driven/source"
	"github.com/custodia-labs/cvsync/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/cvsync/internal/adapters/driving/cli"
	"github.com/custodia-labs/cvsync/internal/core/domain"
	"github.com/custodia-labs/cvsync/internal/core/ports/driven"
	"github.com/custodia-labs/cvsync/internal/core/services"
	"github.com/custodia-labs/cvsync/internal/logger"
	"github.com/custodia-labs/cvsync/internal/normalisers/latex"
)

// version is set via -ldflags at release time.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap wires the adapters for one invocation.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = domain.ConfigPath(root)
	}

	configStore, err := file.NewConfigStore(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	settings, err := services.LoadSettings(configStore, root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("root %s, config %s", root, configPath)

	svc := &cli.Services{
		Config:   configStore,
		Settings: settings,
	}
	if opts.ConfigOnly {
		return svc, nil
	}

	var history driven.HistoryStore
	if settings.History.Enabled {
		store, err := sqlite.NewStore(settings.History.Path)
		if err != nil {
			// History is optional; a sync must not fail because of it.
			logger.Warn("history disabled: %v", err)
		} else {
			history = store.HistoryStore()
			svc.Close = store.Close
		}
	}

	backups := backup.NewFileStore(settings.PagePath, settings.BackupDir)
	remapper := services.NewCategoryRemapper(settings.Categories, settings.DefaultBucket)

	svc.Sync = services.NewSyncService(
		source.NewFileReader(settings.Source),
		latex.New(),
		htmltree.NewFileStore(settings.PagePath),
		backups,
		progress.New(opts.Progress),
		remapper,
		history,
		settings.History.Keep,
	)
	svc.History = services.NewHistoryService(history, backups)

	return svc, nil
}
