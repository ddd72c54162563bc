// Package migrations embeds the console's SQLite schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
