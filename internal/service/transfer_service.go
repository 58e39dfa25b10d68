package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/chanlloyd12/backend-repo/internal/domain"
	"github.com/chanlloyd12/backend-repo/internal/dto"
	"github.com/chanlloyd12/backend-repo/internal/repository"
)

// TransferService определяет интерфейс бизнес-логики для переводов
type TransferService interface {
	Create(ctx context.Context, req *dto.CreateTransferRequest) (*domain.Transfer, error)
	GetByID(ctx context.Context, id int64) (*domain.Transfer, error)
	List(ctx context.Context) ([]domain.Transfer, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Transfer, error)
	Delete(ctx context.Context, id int64) error
}

type transferService struct {
	store *repository.Store
}

// NewTransferService создаёт новый экземпляр сервиса
func NewTransferService(store *repository.Store) TransferService {
	return &transferService{store: store}
}

// Create проверяет предусловия по зафиксированному состоянию и одной транзакцией
// создаёт перевод вместе с процессом согласования.
func (s *transferService) Create(ctx context.Context, req *dto.CreateTransferRequest) (*domain.Transfer, error) {
	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		return nil, domain.ErrMissingEmployeeID
	}
	toDept := strings.TrimSpace(req.Department)
	if toDept == "" {
		return nil, domain.ErrMissingDepartment
	}

	emp, err := s.store.Employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	fromDept := domain.UnknownDepartment
	if name := emp.DepartmentName(); name != nil {
		fromDept = *name
	}

	if strings.EqualFold(fromDept, toDept) {
		return nil, domain.ErrSameDepartmentTransfer
	}

	pending, err := s.store.Transfers.HasPending(ctx, emp.EmployeeID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, domain.ErrPendingTransferExists
	}

	duplicate, err := s.store.Transfers.HasPendingRoute(ctx, emp.EmployeeID, fromDept, toDept)
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, domain.ErrDuplicatePendingTransfer
	}

	transfer := &domain.Transfer{
		EmployeeID: emp.EmployeeID,
		FromDept:   fromDept,
		ToDept:     toDept,
		Status:     domain.StatusPending,
	}

	err = s.store.InTx(ctx, func(tx *repository.Store) error {
		if err := tx.Transfers.Create(ctx, transfer); err != nil {
			return err
		}
		return tx.Workflows.Create(ctx, domain.NewTransferWorkflow(transfer))
	})
	if err != nil {
		return nil, fmt.Errorf("create transfer: %w", err)
	}

	return s.store.Transfers.GetByID(ctx, transfer.ID)
}

func (s *transferService) GetByID(ctx context.Context, id int64) (*domain.Transfer, error) {
	return s.store.Transfers.GetByID(ctx, id)
}

func (s *transferService) List(ctx context.Context) ([]domain.Transfer, error) {
	return s.store.Transfers.List(ctx)
}

func (s *transferService) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Transfer, error) {
	if _, err := s.store.Employees.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.store.Transfers.ListByEmployee(ctx, employeeID)
}

// Delete удаляет перевод; процесс согласования удаляется внешним ключом
func (s *transferService) Delete(ctx context.Context, id int64) error {
	return s.store.Transfers.Delete(ctx, id)
}
