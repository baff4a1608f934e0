// Package xpgx runs squirrel builders on a pgx pool.
package xpgx

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Pool interface {
	Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error)
	Queryx(ctx context.Context, query sq.Sqlizer) (pgx.Rows, error)
	Ping(ctx context.Context) error
	Close()
}

type pool struct {
	*pgxpool.Pool
}

// Connect opens a pool for dsn and checks it answers.
func Connect(ctx context.Context, dsn string) (Pool, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &pool{p}, nil
}

func (p *pool) Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("ToSql: %w", err)
	}
	return p.Exec(ctx, sql, args...)
}

func (p *pool) Queryx(ctx context.Context, query sq.Sqlizer) (pgx.Rows, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ToSql: %w", err)
	}
	return p.Query(ctx, sql, args...)
}

// Get scans exactly one row into T by column name.
func Get[T any](ctx context.Context, p Pool, query sq.Sqlizer) (*T, error) {
	rows, err := p.Queryx(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
}

// Select scans every row into T by column name.
func Select[T any](ctx context.Context, p Pool, query sq.Sqlizer) ([]*T, error) {
	rows, err := p.Queryx(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
}
