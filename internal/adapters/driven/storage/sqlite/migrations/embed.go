// Package migrations holds the numbered SQL files that build the sync
// history schema. Store.migrate applies them in filename order.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
