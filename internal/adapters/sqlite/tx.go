// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/example/banban/internal/core/ordinal"
	"github.com/example/banban/internal/ports/secondary"
)

type txKey struct{}

// querier is the subset of *sql.DB and *sql.Tx the repositories use.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// conn returns the transaction carried by ctx, or db when there is none.
func conn(ctx context.Context, db *sql.DB) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}

// Transactor implements secondary.Transactor with database/sql transactions.
type Transactor struct {
	db *sql.DB
}

// NewTransactor creates a new Transactor over db.
func NewTransactor(db *sql.DB) *Transactor {
	return &Transactor{db: db}
}

// InTx runs fn in a transaction. A transaction already carried by ctx is
// joined, so the outermost InTx decides commit or rollback.
func (t *Transactor) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return ordinal.Storage("failed to begin transaction", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rErr := tx.Rollback(); rErr != nil {
			return errors.Join(err, ordinal.Storage("failed to roll back transaction", rErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return ordinal.Storage("failed to commit transaction", err)
	}
	return nil
}

// Ensure Transactor implements the interface.
var _ secondary.Transactor = (*Transactor)(nil)
