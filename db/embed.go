// Package db embeds the SQL migration files so that production builds
// can run migrations without the source tree on disk.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
