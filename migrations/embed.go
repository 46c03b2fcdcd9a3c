package migrations

import "embed"

// FS holds the goose migration files applied at startup and in integration tests.
//
//go:embed *.sql
var FS embed.FS
