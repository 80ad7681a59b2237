package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresTable is the table backing the Postgres KV.
const PostgresTable = "lcs_kv"

const createTable = `CREATE TABLE IF NOT EXISTS ` + PostgresTable + ` (
	key        text PRIMARY KEY,
	value      jsonb NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
)`

// Postgres is a KV stored in a Postgres table, for settings shared across
// machines.
type Postgres struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// OpenPostgres connects to the database at url and creates the table if needed.
func OpenPostgres(ctx context.Context, url string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, createTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("cannot create table %q: %w", PostgresTable, err)
	}
	return &Postgres{pool: pool, timeout: 5 * time.Second}, nil
}

func (p *Postgres) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), p.timeout)
}

func (p *Postgres) Get(key string) ([]byte, error) {
	ctx, cancel := p.ctx()
	defer cancel()

	var value []byte
	err := p.pool.QueryRow(ctx, `SELECT value FROM `+PostgresTable+` WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("postgres %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", key, err)
	}
	return value, nil
}

func (p *Postgres) Set(key string, value []byte) error {
	ctx, cancel := p.ctx()
	defer cancel()

	_, err := p.pool.Exec(ctx, `INSERT INTO `+PostgresTable+` (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`, key, string(value))
	if err != nil {
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	return nil
}

func (p *Postgres) Delete(key string) error {
	ctx, cancel := p.ctx()
	defer cancel()

	if _, err := p.pool.Exec(ctx, `DELETE FROM `+PostgresTable+` WHERE key = $1`, key); err != nil {
		return fmt.Errorf("cannot delete %q: %w", key, err)
	}
	return nil
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
