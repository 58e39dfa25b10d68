package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/chanlloyd12/backend-repo/internal/database"
	"github.com/chanlloyd12/backend-repo/internal/domain"
	"github.com/chanlloyd12/backend-repo/internal/repository"
)

func newTestStore(t *testing.T) (*repository.Store, *gorm.DB) {
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

	return repository.NewStore(db), db
}

func seedEmployee(t *testing.T, store *repository.Store, employeeID string, departmentID *int64) *domain.Employee {
	t.Helper()
	ctx := context.Background()

	account := &domain.Account{Email: employeeID + "@example.com", Status: domain.AccountActive}
	if err := store.Accounts.Create(ctx, account); err != nil {
		t.Fatalf("create account: %v", err)
	}

	emp := &domain.Employee{
		EmployeeID:   employeeID,
		AccountID:    account.ID,
		DepartmentID: departmentID,
		Position:     "Engineer",
		HireDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:       domain.EmployeeActive,
	}
	if err := store.Employees.Create(ctx, emp); err != nil {
		t.Fatalf("create employee: %v", err)
	}
	return emp
}

func seedDepartment(t *testing.T, store *repository.Store, name string) *domain.Department {
	t.Helper()
	dept := &domain.Department{Name: name}
	if err := store.Departments.Create(context.Background(), dept); err != nil {
		t.Fatalf("create department: %v", err)
	}
	return dept
}

func TestEmployeeRepository_LastEmployeeID(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	last, err := store.Employees.LastEmployeeID(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last != "" {
		t.Errorf("expected empty id on empty table, got %q", last)
	}

	for _, id := range []string{"EMP002", "EMP999", "EMP1000", "EMP010"} {
		seedEmployee(t, store, id, nil)
	}

	last, err = store.Employees.LastEmployeeID(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last != "EMP1000" {
		t.Errorf("expected EMP1000, got %q", last)
	}
}

func TestEmployeeRepository_CreateConflict(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first := seedEmployee(t, store, "EMP001", nil)

	account := &domain.Account{Email: "other@example.com", Status: domain.AccountActive}
	if err := store.Accounts.Create(ctx, account); err != nil {
		t.Fatalf("create account: %v", err)
	}

	dup := &domain.Employee{EmployeeID: first.EmployeeID, AccountID: account.ID, HireDate: time.Now()}
	if err := store.Employees.Create(ctx, dup); !errors.Is(err, domain.ErrEmployeeIDConflict) {
		t.Errorf("expected ErrEmployeeIDConflict, got %v", err)
	}
}

func TestEmployeeRepository_GetByIDWithRelations(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	dept := seedDepartment(t, store, "Engineering")
	seedEmployee(t, store, "EMP001", &dept.ID)

	emp, err := store.Employees.GetByID(ctx, "EMP001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name := emp.DepartmentName(); name == nil || *name != "Engineering" {
		t.Errorf("expected department Engineering, got %v", name)
	}
	if email := emp.Email(); email == nil || *email != "EMP001@example.com" {
		t.Errorf("unexpected email %v", email)
	}

	if _, err := store.Employees.GetByID(ctx, "EMP404"); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestDepartmentRepository(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sales := seedDepartment(t, store, "Sales")
	seedDepartment(t, store, "Engineering")
	seedEmployee(t, store, "EMP001", &sales.ID)
	seedEmployee(t, store, "EMP002", &sales.ID)

	if err := store.Departments.Create(ctx, &domain.Department{Name: "Sales"}); !errors.Is(err, domain.ErrDuplicateDepartmentName) {
		t.Errorf("expected ErrDuplicateDepartmentName, got %v", err)
	}

	found, err := store.Departments.GetByName(ctx, "sALES")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != sales.ID {
		t.Errorf("expected department %d, got %d", sales.ID, found.ID)
	}

	if _, err := store.Departments.GetByName(ctx, "Marketing"); !errors.Is(err, domain.ErrDepartmentNotFound) {
		t.Errorf("expected ErrDepartmentNotFound, got %v", err)
	}

	departments, err := store.Departments.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(departments) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(departments))
	}
	// Сортировка по имени: Engineering, Sales
	if departments[1].Name != "Sales" || len(departments[1].Employees) != 2 {
		t.Errorf("expected Sales with 2 employees, got %s with %d", departments[1].Name, len(departments[1].Employees))
	}
}

func TestTransferRepository_OnePendingPerEmployee(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	seedEmployee(t, store, "EMP001", nil)

	first := &domain.Transfer{EmployeeID: "EMP001", FromDept: "Unknown", ToDept: "Sales", Status: domain.StatusPending}
	if err := store.Transfers.Create(ctx, first); err != nil {
		t.Fatalf("create transfer: %v", err)
	}

	second := &domain.Transfer{EmployeeID: "EMP001", FromDept: "Unknown", ToDept: "Finance", Status: domain.StatusPending}
	if err := store.Transfers.Create(ctx, second); !errors.Is(err, domain.ErrPendingTransferExists) {
		t.Fatalf("expected ErrPendingTransferExists, got %v", err)
	}

	pending, err := store.Transfers.HasPendingRoute(ctx, "EMP001", "Unknown", "Sales")
	if err != nil || !pending {
		t.Errorf("expected pending route, got %v (%v)", pending, err)
	}

	if err := store.Transfers.UpdateStatus(ctx, first.ID, domain.StatusRejected); err != nil {
		t.Fatalf("update status: %v", err)
	}

	pending, err = store.Transfers.HasPending(ctx, "EMP001")
	if err != nil || pending {
		t.Errorf("expected no pending transfer, got %v (%v)", pending, err)
	}

	second.ID = 0
	if err := store.Transfers.Create(ctx, second); err != nil {
		t.Errorf("expected new pending transfer after rejection, got %v", err)
	}
}

func TestRequestRepository_UpdateContentKeepsStatus(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	seedEmployee(t, store, "EMP001", nil)

	req := &domain.Request{
		Type:       domain.RequestEquipment,
		EmployeeID: "EMP001",
		Status:     domain.StatusApproved,
		Items:      []domain.RequestItem{{Name: "Laptop", Quantity: 1}},
	}
	if err := store.Requests.Create(ctx, req); err != nil {
		t.Fatalf("create request: %v", err)
	}

	items := []domain.RequestItem{{Name: "Monitor", Quantity: 2}, {Name: "Dock", Quantity: 1}}
	if err := store.Requests.UpdateContent(ctx, req.ID, domain.RequestResources, items); err != nil {
		t.Fatalf("update content: %v", err)
	}

	got, err := store.Requests.GetByID(ctx, req.ID)
	if err != nil {
		t.Fatalf("get request: %v", err)
	}
	if got.Type != domain.RequestResources || len(got.Items) != 2 || got.Items[0].Name != "Monitor" {
		t.Errorf("unexpected request after update: %+v", got)
	}
	if got.Status != domain.StatusApproved {
		t.Errorf("expected status to stay Approved, got %s", got.Status)
	}
	if got.Employee == nil || got.Employee.Account == nil {
		t.Error("expected employee with account to be loaded")
	}

	if err := store.Requests.UpdateContent(ctx, 999, domain.RequestLeave, nil); !errors.Is(err, domain.ErrRequestNotFound) {
		t.Errorf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestWorkflowRepository_DeletedWithRequest(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	seedEmployee(t, store, "EMP001", nil)

	req := &domain.Request{Type: domain.RequestLeave, EmployeeID: "EMP001", Status: domain.StatusPending}
	if err := store.Requests.Create(ctx, req); err != nil {
		t.Fatalf("create request: %v", err)
	}
	wf := domain.NewRequestWorkflow(req)
	if err := store.Workflows.Create(ctx, wf); err != nil {
		t.Fatalf("create workflow: %v", err)
	}

	loaded, err := store.Workflows.GetByID(ctx, wf.ID)
	if err != nil {
		t.Fatalf("get workflow: %v", err)
	}
	if loaded.Request == nil || loaded.Request.ID != req.ID || loaded.Transfer != nil {
		t.Errorf("expected only the request to be attached, got %+v", loaded)
	}

	if err := store.Requests.Delete(ctx, req.ID); err != nil {
		t.Fatalf("delete request: %v", err)
	}
	if _, err := store.Workflows.GetByID(ctx, wf.ID); !errors.Is(err, domain.ErrWorkflowNotFound) {
		t.Errorf("expected workflow to be removed with its request, got %v", err)
	}
}

func TestStore_InTxRollback(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	seedEmployee(t, store, "EMP001", nil)
	boom := errors.New("boom")

	err := store.InTx(ctx, func(tx *repository.Store) error {
		req := &domain.Request{Type: domain.RequestLeave, EmployeeID: "EMP001", Status: domain.StatusPending}
		if err := tx.Requests.Create(ctx, req); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	requests, err := store.Requests.List(ctx)
	if err != nil {
		t.Fatalf("list requests: %v", err)
	}
	if len(requests) != 0 {
		t.Errorf("expected rollback to leave no requests, got %d", len(requests))
	}
}
