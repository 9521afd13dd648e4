package postgres

import "embed"

// MigrationsFS carries the goose SQL migrations inside the binary, so the
// server and the test harness apply the same schema without depending on a
// checkout layout.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

// MigrationsDir is the root of the migration files within MigrationsFS.
const MigrationsDir = "migrations"
