// Package mcp provides an MCP (Model Context Protocol) server adapter for cvsync.
// It lets AI assistants sync the CV page, revert it, and inspect extracted
// records and past runs.
package mcp

import "errors"

// ErrMissingSyncService is returned when the sync service is not provided.
var ErrMissingSyncService = errors.New("mcp: sync service is required")
