package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateConnectionRecords, downCreateConnectionRecords)
}

func upCreateConnectionRecords(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE connection_records (
		id SERIAL PRIMARY KEY,
		shop VARCHAR NOT NULL UNIQUE,
		username VARCHAR NOT NULL DEFAULT '',
		access_token VARCHAR NOT NULL,
		expires_at TIMESTAMP WITH TIME ZONE NOT NULL,
		store_token VARCHAR NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downCreateConnectionRecords(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE connection_records;
	`)
	if err != nil {
		return err
	}
	return nil
}
