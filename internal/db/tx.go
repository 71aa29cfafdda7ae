package db

import (
	"context"
	"database/sql"
	"fmt"
)

// TxFunc is the body of a transaction. Returning an error rolls it back.
type TxFunc func(tx *sql.Tx) error

// WithTx runs fn inside a single transaction: commit when fn returns nil,
// rollback when it returns an error or panics.
func WithTx(ctx context.Context, db *sql.DB, fn TxFunc) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
