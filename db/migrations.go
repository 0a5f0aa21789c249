// Package db carries the embedded SQL migrations for the blog schema.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
