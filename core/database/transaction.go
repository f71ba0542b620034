package database

import (
	"context"
	"fmt"

	"careconnect-api/core/logger"

	"github.com/jmoiron/sqlx"
)

// WithTransaction runs fn inside a single transaction. Any error (or panic)
// rolls the whole transaction back; commit happens only when fn returns nil.
func WithTransaction(ctx context.Context, db IDatabase, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("Database:WithTransaction:Begin", err)
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error("Database:WithTransaction:Rollback", rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.Error("Database:WithTransaction:Commit", err)
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
