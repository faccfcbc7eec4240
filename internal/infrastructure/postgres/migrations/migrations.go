// Package migrations embebe el esquema SQL que aplica cmd/migrate con goose.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
