package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/Jeomhps/business-reviews/internal/config"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// DB is the process-wide connection pool. It is built once in main and
// handed to handlers through their constructors.
type DB struct {
	*sqlx.DB

	// lockTimeout bounds how long CreateReview waits for the per-pair lock, in seconds.
	lockTimeout int
	closers     []func() error
}

// Open builds the pool described by cfg and verifies it with a ping.
func Open(ctx context.Context, cfg config.Config) (*DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var closers []func() error
	if cfg.UseConnector() {
		closeDialer, err := registerConnector(ctx, cfg.InstanceConnectionName, cfg.PrivateIP)
		if err != nil {
			return nil, errors.Wrap(err, "cloud sql connector")
		}
		closers = append(closers, closeDialer)
	}

	xdb, err := sqlx.Open("mysql", cfg.DSN())
	if err != nil {
		closeAll(closers)
		return nil, errors.Wrap(err, "open pool")
	}
	xdb.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	xdb.SetMaxIdleConns(cfg.MaxIdleConns)
	xdb.SetMaxOpenConns(cfg.MaxOpenConns)

	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := xdb.PingContext(pingCtx); err != nil {
		_ = xdb.Close()
		closeAll(closers)
		return nil, errors.Wrap(err, "ping")
	}
	return &DB{DB: xdb, lockTimeout: cfg.ReviewLockTimeout, closers: closers}, nil
}

// New wraps an existing handle, mainly for tests.
func New(xdb *sqlx.DB, lockTimeoutSeconds int) *DB {
	return &DB{DB: xdb, lockTimeout: lockTimeoutSeconds}
}

func (d *DB) Close() error {
	err := d.DB.Close()
	closeAll(d.closers)
	return err
}

func closeAll(fns []func() error) {
	for _, fn := range fns {
		_ = fn()
	}
}

// txBeginner is satisfied by both the pool and a pinned *sqlx.Conn.
type txBeginner interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// withTx runs fn in a transaction on the pool and commits it.
func (d *DB) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return inTx(ctx, d.DB, fn)
}

// inTx runs fn in a transaction begun on b. Any error, including one from fn,
// rolls the transaction back.
func inTx(ctx context.Context, b txBeginner, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := b.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "commit")
	}
	return nil
}
