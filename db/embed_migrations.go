package db

import "embed"

// MigrationFS embeds the SQL migration files applied at startup.
//
//go:embed migrations/*.sql
var MigrationFS embed.FS
