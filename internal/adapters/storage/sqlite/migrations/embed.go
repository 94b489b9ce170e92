// Package migrations embeds the SQLite schema of the group store.
package migrations

import "embed"

// FS holds the migration files applied by sqlite.Open.
//
//go:embed *.sql
var FS embed.FS
