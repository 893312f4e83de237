// Package migrations embeds the goose schema migrations for both storage drivers.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed postgres/*.sql
var postgresFS embed.FS

//go:embed sqlite/*.sql
var sqliteFS embed.FS

// Postgres returns the PostgreSQL migrations rooted at their directory,
// ready for goose.NewProvider.
func Postgres() fs.FS { return sub(postgresFS, "postgres") }

// SQLite returns the migrations for the embedded single-user driver.
func SQLite() fs.FS { return sub(sqliteFS, "sqlite") }

func sub(fsys embed.FS, dir string) fs.FS {
	s, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err) // dir is a compile-time embed pattern
	}
	return s
}
