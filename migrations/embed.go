// Package migrations embeds the SQL schema migrations for every supported
// storage backend. Files are named NNN_name.sql and applied in order by
// internal/migration.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
