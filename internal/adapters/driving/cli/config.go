package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cvsync/internal/core/domain"
	"github.com/custodia-labs/cvsync/internal/core/services"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the configuration",
	Long: `Commands for the cvsync configuration file, by default
<root>/.sync/config.toml.`,
}

var configShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Print the effective settings",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationBootstrap: bootstrapConfig},
	RunE:        runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the current settings",
	Long: `Writes every setting, defaults included, to the config file so it can
be edited by hand. An existing file is only replaced with --force.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationBootstrap: bootstrapConfig},
	RunE:        runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	s := settings

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Source]")
	cmd.Printf("  Directory: %s\n", s.Source.Dir)
	paths := s.Source.Paths()
	for _, role := range domain.SourceRoles() {
		cmd.Printf("  %s: %s\n", role, paths[role])
	}
	cmd.Println()

	cmd.Println("[Page]")
	cmd.Printf("  Path: %s\n", s.PagePath)
	cmd.Printf("  Backups: %s\n", s.BackupDir)
	cmd.Println()

	cmd.Println("[History]")
	if s.History.Enabled {
		cmd.Printf("  Enabled: yes\n")
		cmd.Printf("  Path: %s\n", s.History.Path)
		cmd.Printf("  Keep: %d\n", s.History.Keep)
	} else {
		cmd.Printf("  Enabled: no\n")
	}
	cmd.Println()

	cmd.Println("[Watch]")
	cmd.Printf("  Debounce: %s\n", s.Watch.Debounce)
	cmd.Printf("  Min interval: %s\n", s.Watch.MinInterval)
	cmd.Println()

	cmd.Println("[Skills]")
	cmd.Printf("  Default bucket: %s\n", s.DefaultBucket)
	categories := make([]string, 0, len(s.Categories))
	for category := range s.Categories {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	cmd.Printf("  Categories (%d):\n", len(categories))
	for _, category := range categories {
		cmd.Printf("    %s -> %s\n", category, s.Categories[category])
	}
	cmd.Println()

	if _, err := os.Stat(configStore.Path()); err != nil {
		cmd.Printf("Config file: %s (not found, using defaults)\n", configStore.Path())
	} else {
		cmd.Printf("Config file: %s\n", configStore.Path())
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	path := configStore.Path()
	_, err := os.Stat(path)
	switch {
	case err == nil && !configInitForce:
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("checking config file: %w", err)
	}

	if err := services.SaveSettings(configStore, settings); err != nil {
		return err
	}

	cmd.Printf("Wrote %s\n", path)
	return nil
}
