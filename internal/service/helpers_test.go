package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/chanlloyd12/backend-repo/internal/database"
	"github.com/chanlloyd12/backend-repo/internal/domain"
	"github.com/chanlloyd12/backend-repo/internal/repository"
)

var errStorageFault = errors.New("simulated storage fault")

type testEnv struct {
	db    *gorm.DB
	store *repository.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.OpenSQLite("file::memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db, database.DriverSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return &testEnv{db: db, store: repository.NewStore(db)}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (e *testEnv) department(t *testing.T, name string) *domain.Department {
	t.Helper()
	dept := &domain.Department{Name: name}
	if err := e.store.Departments.Create(context.Background(), dept); err != nil {
		t.Fatalf("create department: %v", err)
	}
	return dept
}

func (e *testEnv) account(t *testing.T, email string, status domain.AccountStatus) *domain.Account {
	t.Helper()
	account := &domain.Account{Email: email, Status: status}
	if err := e.store.Accounts.Create(context.Background(), account); err != nil {
		t.Fatalf("create account: %v", err)
	}
	return account
}

// employee создаёт сотрудника с заданным идентификатором; dept может быть nil
func (e *testEnv) employee(t *testing.T, employeeID string, dept *domain.Department) *domain.Employee {
	t.Helper()
	account := e.account(t, employeeID+"@example.com", domain.AccountActive)

	emp := &domain.Employee{
		EmployeeID: employeeID,
		AccountID:  account.ID,
		Position:   "Engineer",
		HireDate:   time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:     domain.EmployeeActive,
	}
	if dept != nil {
		emp.DepartmentID = &dept.ID
	}
	if err := e.store.Employees.Create(context.Background(), emp); err != nil {
		t.Fatalf("create employee: %v", err)
	}
	return emp
}

func (e *testEnv) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func (e *testEnv) departmentOf(t *testing.T, employeeID string) *int64 {
	t.Helper()
	emp, err := e.store.Employees.GetByID(context.Background(), employeeID)
	if err != nil {
		t.Fatalf("get employee: %v", err)
	}
	return emp.DepartmentID
}

// failCreates прерывает вставки в таблицу, пока fail возвращает true
func (e *testEnv) failCreates(t *testing.T, table string, fail func() bool) {
	t.Helper()
	err := e.db.Callback().Create().Before("gorm:create").Register("test:fail_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table == table && fail() {
			tx.AddError(errStorageFault)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
}

func ptr[T any](v T) *T {
	return &v
}
