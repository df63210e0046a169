// Package migrations creates the relational schema at startup.
package migrations

import (
	"context"
	_ "embed"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social/internal/logger"
)

//go:embed schema.sql
var schema string

// Schema returns the DDL applied by Apply.
func Schema() string {
	return schema
}

// Apply creates every table and index that does not exist yet.
// Running it against an up-to-date database is a no-op.
func Apply(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		logger.Log.Errorw("failed to apply schema", "error", err)
		return err
	}
	logger.Log.Info("schema checked/created")
	return nil
}
