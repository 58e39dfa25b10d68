package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store объединяет репозитории, работающие поверх одного соединения или транзакции
type Store struct {
	db *gorm.DB

	Accounts    AccountRepository
	Departments DepartmentRepository
	Employees   EmployeeRepository
	Requests    RequestRepository
	Transfers   TransferRepository
	Workflows   WorkflowRepository
}

// NewStore создаёт набор репозиториев поверх db
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:          db,
		Accounts:    NewAccountRepository(db),
		Departments: NewDepartmentRepository(db),
		Employees:   NewEmployeeRepository(db),
		Requests:    NewRequestRepository(db),
		Transfers:   NewTransferRepository(db),
		Workflows:   NewWorkflowRepository(db),
	}
}

// InTx выполняет fn в транзакции. Ошибка, паника или отмена ctx откатывают все изменения.
func (s *Store) InTx(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// isUniqueViolation распознаёт нарушение уникальности для обоих драйверов
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// lockForUpdate блокирует строку до конца транзакции; SQLite блокирует базу целиком и FOR UPDATE не знает
func lockForUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "postgres" {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}
