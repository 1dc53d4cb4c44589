package db

import (
	"context"
	"database/sql"

	_ "embed"
)

//go:embed schema.sql
var schemaSQL string

// Migrate applies the embedded schema, creating the purchases,
// purchase_items, and subscriptions tables when they do not already exist.
// Every statement in schema.sql is idempotent, so running it on each
// startup is safe.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}
