package syncrun

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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
		logger: logger.WithComponent("SyncRunRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

const syncRunColumns = "id, run_id, shop, username, status, posts_created, posts_updated, posts_skipped, error_message, started_at, finished_at"

func (p *Pgx) Create(ctx context.Context, run *domain.SyncRun) error {
	query, args, err := repositories.SqBuilder.
		Insert("sync_runs").
		Columns("run_id", "shop", "username", "status", "posts_created", "posts_updated", "posts_skipped", "error_message", "started_at", "finished_at").
		Values(run.RunID, run.Shop, run.Username, run.Status, run.PostsCreated, run.PostsUpdated, run.PostsSkipped, run.ErrorMessage, run.StartedAt, run.FinishedAt).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	_, err = p.pg.Exec(ctx, query, args...)
	return err
}

func (p *Pgx) GetLatestByShop(ctx context.Context, shop string) (*domain.SyncRun, error) {
	query, args, err := repositories.SqBuilder.
		Select(syncRunColumns).
		From("sync_runs").
		Where(sq.Eq{"shop": shop}).
		OrderBy("started_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	var run domain.SyncRun
	err = p.pg.QueryRow(ctx, query, args...).Scan(
		&run.ID,
		&run.RunID,
		&run.Shop,
		&run.Username,
		&run.Status,
		&run.PostsCreated,
		&run.PostsUpdated,
		&run.PostsSkipped,
		&run.ErrorMessage,
		&run.StartedAt,
		&run.FinishedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &run, nil
}

func (p *Pgx) ListByShop(ctx context.Context, shop string, count int) ([]*domain.SyncRun, error) {
	query, args, err := repositories.SqBuilder.
		Select(syncRunColumns).
		From("sync_runs").
		Where(sq.Eq{"shop": shop}).
		OrderBy("started_at DESC").
		Limit(uint64(count)).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*domain.SyncRun
	for rows.Next() {
		var run domain.SyncRun
		if err := rows.Scan(
			&run.ID,
			&run.RunID,
			&run.Shop,
			&run.Username,
			&run.Status,
			&run.PostsCreated,
			&run.PostsUpdated,
			&run.PostsSkipped,
			&run.ErrorMessage,
			&run.StartedAt,
			&run.FinishedAt,
		); err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}
