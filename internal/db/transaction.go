package db

import (
	"context"
	"fmt"

	"github.com/ikkim/fyyur/pkg/logger"
	"gorm.io/gorm"
)

// Transaction runs fn inside a transaction on conn. The transaction is
// committed when fn returns nil and rolled back when it returns an error or
// panics; the panic is re-raised after the rollback.
func Transaction(ctx context.Context, conn *gorm.DB, fn func(tx *gorm.DB) error) (err error) {
	tx := conn.WithContext(ctx).Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin transaction", tx.Error)
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic inside transaction, rolled back", fmt.Errorf("%v", r))
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			logger.Error("Failed to roll back transaction", rbErr, map[string]interface{}{
				"cause": err.Error(),
			})
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit transaction", err)
		return err
	}
	return nil
}
