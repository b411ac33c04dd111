package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateSyncRuns, downCreateSyncRuns)
}

func upCreateSyncRuns(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE sync_runs (
		id SERIAL PRIMARY KEY,
		run_id VARCHAR NOT NULL,
		shop VARCHAR NOT NULL,
		username VARCHAR NOT NULL DEFAULT '',
		status VARCHAR NOT NULL,
		posts_created INTEGER NOT NULL DEFAULT 0,
		posts_updated INTEGER NOT NULL DEFAULT 0,
		posts_skipped INTEGER NOT NULL DEFAULT 0,
		error_message TEXT NOT NULL DEFAULT '',
		started_at TIMESTAMP WITH TIME ZONE NOT NULL,
		finished_at TIMESTAMP WITH TIME ZONE NOT NULL
	);
	CREATE INDEX sync_runs_shop_started_at_idx ON sync_runs (shop, started_at DESC);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downCreateSyncRuns(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE sync_runs;
	`)
	if err != nil {
		return err
	}
	return nil
}
