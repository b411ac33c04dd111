package connection

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mirrorworks/instamirror/internal/domain"
	"github.com/mirrorworks/instamirror/internal/repositories"
	"github.com/mirrorworks/instamirror/pkg/logger"

	sq "github.com/Masterminds/squirrel"
)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("ConnectionRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

const connectionColumns = "id, shop, username, access_token, expires_at, store_token, created_at, updated_at"

func (p *Pgx) GetByShop(ctx context.Context, shop string) (*domain.ConnectionRecord, error) {
	query, args, err := repositories.SqBuilder.
		Select(connectionColumns).
		From("connection_records").
		Where(sq.Eq{"shop": shop}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	var record domain.ConnectionRecord
	err = p.pg.QueryRow(ctx, query, args...).Scan(
		&record.ID,
		&record.Shop,
		&record.Username,
		&record.AccessToken,
		&record.ExpiresAt,
		&record.StoreToken,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Upsert keeps one record per shop. A reinstall replaces the tokens in place
// but keeps the stored username, so the switch check still sees the previous
// account.
func (p *Pgx) Upsert(ctx context.Context, record *domain.ConnectionRecord) error {
	now := time.Now()
	query, args, err := repositories.SqBuilder.
		Insert("connection_records").
		Columns("shop", "username", "access_token", "expires_at", "store_token", "created_at", "updated_at").
		Values(record.Shop, record.Username, record.AccessToken, record.ExpiresAt, record.StoreToken, now, now).
		Suffix(`ON CONFLICT (shop) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			expires_at = EXCLUDED.expires_at,
			store_token = EXCLUDED.store_token,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	_, err = p.pg.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (p *Pgx) UpdateUsername(ctx context.Context, shop, username string) error {
	query, args, err := repositories.SqBuilder.
		Update("connection_records").
		Set("username", username).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"shop": shop}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Pgx) Delete(ctx context.Context, shop string) error {
	query, args, err := repositories.SqBuilder.
		Delete("connection_records").
		Where(sq.Eq{"shop": shop}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Pgx) ListAll(ctx context.Context) ([]*domain.ConnectionRecord, error) {
	query, _, err := repositories.SqBuilder.
		Select(connectionColumns).
		From("connection_records").
		OrderBy("shop ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.ConnectionRecord
	for rows.Next() {
		var record domain.ConnectionRecord
		if err := rows.Scan(
			&record.ID,
			&record.Shop,
			&record.Username,
			&record.AccessToken,
			&record.ExpiresAt,
			&record.StoreToken,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
