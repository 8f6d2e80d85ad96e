package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var extractFormat string

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Print the records extracted from the LaTeX sources",
	Long: `Parses the LaTeX sources and prints the extracted records without
touching the page. Useful to check what a sync would write.`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "json", "output format: json or yaml")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	if syncService == nil {
		return errors.New("sync service not configured")
	}

	cv, err := syncService.Extract(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch extractFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(cv)
	case "yaml", "yml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(cv); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", extractFormat)
	}
}
