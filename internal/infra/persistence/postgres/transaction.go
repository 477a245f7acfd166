// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	domainerrors "voll/internal/domain/errors"
	"voll/internal/domain/repository"
	"voll/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to a single *gorm.DB transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// NewDoctorRepository creates a doctor repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewDoctorRepository() repository.DoctorRepository {
	return NewDoctorRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
// Begin, commit and rollback failures match domainerrors.ErrTransactionFailed.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return transactionFailed(errors.Wrap(tx.Error, "failed to begin transaction"))
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return transactionFailed(fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err))
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return transactionFailed(errors.Wrap(err, "failed to commit transaction"))
	}

	return nil
}

func transactionFailed(err error) error {
	return errors.Join(domainerrors.ErrTransactionFailed, err)
}
