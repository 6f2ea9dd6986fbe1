package database

import "embed"

// MigrationsFS holds the versioned schema migrations in golang-migrate's
// {version}_{title}.{up|down}.sql layout.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

// MigrationsDir is the directory inside MigrationsFS holding the SQL files.
const MigrationsDir = "migrations"
