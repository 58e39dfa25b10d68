package handler

import (
	"github.com/chanlloyd12/backend-repo/internal/domain"
	"github.com/chanlloyd12/backend-repo/internal/dto"
)

func toAccountResponse(account *domain.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:        account.ID,
		Email:     account.Email,
		Status:    string(account.Status),
		CreatedAt: account.CreatedAt,
	}
}

func toDepartmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:            dept.ID,
		Name:          dept.Name,
		Description:   dept.Description,
		EmployeeCount: len(dept.Employees),
	}
}

func toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		EmployeeID:   emp.EmployeeID,
		AccountID:    emp.AccountID,
		Email:        emp.Email(),
		DepartmentID: emp.DepartmentID,
		Department:   emp.DepartmentName(),
		Position:     emp.Position,
		HireDate:     emp.HireDate.Format("2006-01-02"),
		Status:       string(emp.Status),
	}
}

// toEmployeeSummary возвращает nil, если сотрудник не загружен
func toEmployeeSummary(emp *domain.Employee) *dto.EmployeeSummary {
	if emp == nil {
		return nil
	}
	return &dto.EmployeeSummary{
		EmployeeID: emp.EmployeeID,
		Email:      emp.Email(),
		Department: emp.DepartmentName(),
	}
}

func toTransferResponse(transfer *domain.Transfer) dto.TransferResponse {
	return dto.TransferResponse{
		ID:         transfer.ID,
		EmployeeID: transfer.EmployeeID,
		Employee:   toEmployeeSummary(transfer.Employee),
		FromDept:   transfer.FromDept,
		ToDept:     transfer.ToDept,
		Status:     string(transfer.Status),
		CreatedAt:  transfer.CreatedAt,
		UpdatedAt:  transfer.UpdatedAt,
	}
}

func toRequestResponse(req *domain.Request) dto.RequestResponse {
	items := make([]dto.RequestItemResponse, len(req.Items))
	for i, item := range req.Items {
		items[i] = dto.RequestItemResponse{Name: item.Name, Quantity: item.Quantity}
	}

	return dto.RequestResponse{
		ID:         req.ID,
		Type:       string(req.Type),
		EmployeeID: req.EmployeeID,
		Employee:   toEmployeeSummary(req.Employee),
		Status:     string(req.Status),
		Items:      items,
		CreatedAt:  req.CreatedAt,
		UpdatedAt:  req.UpdatedAt,
	}
}

func toWorkflowResponse(wf *domain.Workflow) dto.WorkflowResponse {
	resp := dto.WorkflowResponse{
		ID:         wf.ID,
		Type:       string(wf.Type),
		Details:    wf.Details,
		EmployeeID: wf.EmployeeID,
		Employee:   toEmployeeSummary(wf.Employee),
		Status:     string(wf.Status),
		RequestID:  wf.RequestID,
		TransferID: wf.TransferID,
		CreatedAt:  wf.CreatedAt,
		UpdatedAt:  wf.UpdatedAt,
	}

	// Вложенная сущность выводится только для заполненной стороны связи
	switch wf.Link().Kind {
	case domain.LinkRequest:
		if wf.Request != nil {
			req := toRequestResponse(wf.Request)
			resp.Request = &req
		}
	case domain.LinkTransfer:
		if wf.Transfer != nil {
			transfer := toTransferResponse(wf.Transfer)
			resp.Transfer = &transfer
		}
	}

	return resp
}

func mapSlice[T any, R any](items []T, fn func(*T) R) []R {
	result := make([]R, len(items))
	for i := range items {
		result[i] = fn(&items[i])
	}
	return result
}
