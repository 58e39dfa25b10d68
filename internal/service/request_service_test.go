package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/chanlloyd12/backend-repo/internal/domain"
	"github.com/chanlloyd12/backend-repo/internal/dto"
	"github.com/chanlloyd12/backend-repo/internal/service"
)

func TestRequestCreate(t *testing.T) {
	env := newTestEnv(t)
	env.employee(t, "EMP001", nil)

	svc := service.NewRequestService(env.store)
	req, err := svc.Create(context.Background(), &dto.CreateRequestRequest{
		EmployeeID: "EMP001",
		Type:       "Equipment",
		Items: []dto.RequestItem{
			{Name: "Laptop", Quantity: ptr(2)},
			{Name: "Mouse"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Status != domain.StatusPending || req.Type != domain.RequestEquipment {
		t.Errorf("unexpected request %+v", req)
	}
	if len(req.Items) != 2 || req.Items[0].Quantity != 2 || req.Items[1].Quantity != 1 {
		t.Errorf("unexpected items %+v", req.Items)
	}
	if email := req.Employee.Email(); email == nil || *email != "EMP001@example.com" {
		t.Errorf("expected employee email in view, got %v", email)
	}

	workflows, err := env.store.Workflows.ListByEmployee(context.Background(), "EMP001")
	if err != nil {
		t.Fatalf("list workflows: %v", err)
	}
	if len(workflows) != 1 || workflows[0].Type != domain.WorkflowRequestApproval || workflows[0].Details != "Request created" {
		t.Fatalf("expected one request approval workflow, got %+v", workflows)
	}
	if link := workflows[0].Link(); link.Kind != domain.LinkRequest || link.ID != req.ID {
		t.Errorf("expected link to request %d, got %+v", req.ID, link)
	}
}

func TestRequestViews_IncludeEmployeeDepartment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.employee(t, "EMP001", env.department(t, "Engineering"))

	svc := service.NewRequestService(env.store)
	created, err := svc.Create(ctx, &dto.CreateRequestRequest{EmployeeID: "EMP001", Type: "Leave"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get request: %v", err)
	}
	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list requests: %v", err)
	}
	own, err := svc.ListByEmployee(ctx, "EMP001")
	if err != nil {
		t.Fatalf("list requests by employee: %v", err)
	}
	if len(all) != 1 || len(own) != 1 {
		t.Fatalf("expected one request in each list, got %d and %d", len(all), len(own))
	}

	views := map[string]*domain.Request{"create": created, "get": loaded, "list": &all[0], "list by employee": &own[0]}
	for name, req := range views {
		if req.Employee == nil {
			t.Errorf("%s: employee not loaded", name)
			continue
		}
		if dept := req.Employee.DepartmentName(); dept == nil || *dept != "Engineering" {
			t.Errorf("%s: expected department Engineering, got %v", name, dept)
		}
	}
}

func TestRequestCreate_Errors(t *testing.T) {
	env := newTestEnv(t)
	env.employee(t, "EMP001", nil)
	svc := service.NewRequestService(env.store)

	_, err := svc.Create(context.Background(), &dto.CreateRequestRequest{EmployeeID: "EMP001", Type: "Travel"})
	if !errors.Is(err, domain.ErrInvalidRequestType) {
		t.Errorf("expected ErrInvalidRequestType, got %v", err)
	}

	_, err = svc.Create(context.Background(), &dto.CreateRequestRequest{EmployeeID: "EMP404", Type: "Leave"})
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestRequestCreate_AtomicOnWorkflowFailure(t *testing.T) {
	env := newTestEnv(t)
	env.employee(t, "EMP001", nil)
	env.failCreates(t, "workflows", func() bool { return true })

	svc := service.NewRequestService(env.store)
	_, err := svc.Create(context.Background(), &dto.CreateRequestRequest{EmployeeID: "EMP001", Type: "Leave"})
	if !errors.Is(err, errStorageFault) {
		t.Fatalf("expected storage fault, got %v", err)
	}

	if n := env.count(t, &domain.Request{}); n != 0 {
		t.Errorf("expected request insert to be rolled back, got %d rows", n)
	}
	if n := env.count(t, &domain.Workflow{}); n != 0 {
		t.Errorf("expected no workflows, got %d rows", n)
	}
}

func TestRequestUpdate(t *testing.T) {
	env := newTestEnv(t)
	env.employee(t, "EMP001", nil)
	svc := service.NewRequestService(env.store)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateRequestRequest{
		EmployeeID: "EMP001",
		Type:       "Equipment",
		Items:      []dto.RequestItem{{Name: "Laptop"}},
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, &dto.UpdateRequestRequest{Type: ptr("Resources")})
	if err != nil {
		t.Fatalf("update type: %v", err)
	}
	if updated.Type != domain.RequestResources || len(updated.Items) != 1 || updated.Items[0].Name != "Laptop" {
		t.Errorf("expected type change with items untouched, got %+v", updated)
	}

	updated, err = svc.Update(ctx, created.ID, &dto.UpdateRequestRequest{Items: []dto.RequestItem{{Name: "Chair", Quantity: ptr(3)}}})
	if err != nil {
		t.Fatalf("update items: %v", err)
	}
	if len(updated.Items) != 1 || updated.Items[0].Name != "Chair" || updated.Items[0].Quantity != 3 {
		t.Errorf("unexpected items %+v", updated.Items)
	}
	if updated.Status != domain.StatusPending {
		t.Errorf("expected status to remain Pending, got %s", updated.Status)
	}

	if _, err := svc.Update(ctx, 999, &dto.UpdateRequestRequest{Type: ptr("Leave")}); !errors.Is(err, domain.ErrRequestNotFound) {
		t.Errorf("expected ErrRequestNotFound, got %v", err)
	}
}
