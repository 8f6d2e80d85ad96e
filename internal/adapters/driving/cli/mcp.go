package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cvsync/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so an AI assistant can sync,
revert and inspect the CV.

By default, the server communicates over stdio using JSON-RPC. Progress
output goes to stderr so stdout stays a clean protocol channel.

Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  cvsync mcp serve

  # HTTP mode (for MCP Inspector)
  cvsync mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "cvsync": {
        "command": "/path/to/cvsync",
        "args": ["mcp", "serve", "--root", "/path/to/site"]
      }
    }
  }`,
	Annotations: map[string]string{annotationProgress: "stderr"},
	RunE:        runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	if syncService == nil {
		return errors.New("sync service not configured")
	}

	ports := &mcp.Ports{
		Sync:    syncService,
		History: historyService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
