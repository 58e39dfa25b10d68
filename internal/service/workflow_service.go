package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/chanlloyd12/backend-repo/internal/domain"
	"github.com/chanlloyd12/backend-repo/internal/dto"
	"github.com/chanlloyd12/backend-repo/internal/repository"
)

// WorkflowService определяет интерфейс движка согласований
type WorkflowService interface {
	GetByID(ctx context.Context, id int64) (*domain.Workflow, error)
	List(ctx context.Context) ([]domain.Workflow, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Workflow, error)
	Update(ctx context.Context, id int64, req *dto.UpdateWorkflowRequest) (*domain.Workflow, error)
	Delete(ctx context.Context, id int64) error
}

type workflowService struct {
	store  *repository.Store
	policy domain.RetransitionPolicy
	logger *slog.Logger
}

// NewWorkflowService создаёт движок согласований с заданной политикой повторных переходов
func NewWorkflowService(store *repository.Store, policy domain.RetransitionPolicy, logger *slog.Logger) WorkflowService {
	return &workflowService{
		store:  store,
		policy: policy,
		logger: logger,
	}
}

func (s *workflowService) GetByID(ctx context.Context, id int64) (*domain.Workflow, error) {
	return s.store.Workflows.GetByID(ctx, id)
}

func (s *workflowService) List(ctx context.Context) ([]domain.Workflow, error) {
	return s.store.Workflows.List(ctx)
}

func (s *workflowService) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Workflow, error) {
	if _, err := s.store.Employees.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.store.Workflows.ListByEmployee(ctx, employeeID)
}

// Update применяет изменения к процессу и распространяет новый статус на связанную
// заявку или перевод. Одобрение перевода переводит сотрудника в целевое подразделение.
// Всё выполняется в одной транзакции.
func (s *workflowService) Update(ctx context.Context, id int64, req *dto.UpdateWorkflowRequest) (*domain.Workflow, error) {
	fields := make(map[string]any)

	var status *domain.Status
	if req.Status != nil {
		st := domain.Status(*req.Status)
		if !st.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		status = &st
		fields["status"] = st
	}
	if req.Details != nil {
		fields["details"] = *req.Details
	}
	if req.Type != nil {
		wfType := domain.WorkflowType(*req.Type)
		if !wfType.Valid() {
			return nil, domain.ErrInvalidWorkflowType
		}
		fields["type"] = wfType
	}

	err := s.store.InTx(ctx, func(tx *repository.Store) error {
		wf, err := tx.Workflows.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		moves := false
		if status != nil {
			if err := domain.CheckTransition(wf.Status, *status, s.policy); err != nil {
				return err
			}
			moves = domain.MovesEmployee(wf.Status, *status)
		}

		if len(fields) > 0 {
			if err := tx.Workflows.Update(ctx, id, fields); err != nil {
				return err
			}
		}

		if status == nil {
			return nil
		}
		return s.cascade(ctx, tx, wf, *status, moves)
	})
	if err != nil {
		return nil, err
	}

	return s.store.Workflows.GetByID(ctx, id)
}

// cascade переносит статус процесса на связанную сущность
func (s *workflowService) cascade(ctx context.Context, tx *repository.Store, wf *domain.Workflow, status domain.Status, moves bool) error {
	link := wf.Link()

	switch link.Kind {
	case domain.LinkRequest:
		err := tx.Requests.UpdateStatus(ctx, link.ID, status)
		if errors.Is(err, domain.ErrRequestNotFound) {
			s.logger.Warn("linked request is missing, status not mirrored",
				slog.Int64("workflow_id", wf.ID),
				slog.Int64("request_id", link.ID),
			)
			return nil
		}
		return err

	case domain.LinkTransfer:
		transfer, err := tx.Transfers.GetByID(ctx, link.ID)
		if errors.Is(err, domain.ErrTransferNotFound) {
			s.logger.Warn("linked transfer is missing, status not mirrored",
				slog.Int64("workflow_id", wf.ID),
				slog.Int64("transfer_id", link.ID),
			)
			return nil
		}
		if err != nil {
			return err
		}

		if err := tx.Transfers.UpdateStatus(ctx, transfer.ID, status); err != nil {
			return err
		}

		if !moves {
			return nil
		}
		return s.moveEmployee(ctx, tx, wf, transfer)

	default:
		s.logger.Warn("workflow has no linked entity",
			slog.Int64("workflow_id", wf.ID),
		)
		return nil
	}
}

// moveEmployee переводит сотрудника в подразделение toDept.
// Неизвестное подразделение или сотрудник не отменяют одобрение, перевод пропускается.
func (s *workflowService) moveEmployee(ctx context.Context, tx *repository.Store, wf *domain.Workflow, transfer *domain.Transfer) error {
	dept, err := tx.Departments.GetByName(ctx, transfer.ToDept)
	if errors.Is(err, domain.ErrDepartmentNotFound) {
		s.logger.Warn("target department not found, employee not moved",
			slog.Int64("workflow_id", wf.ID),
			slog.Int64("transfer_id", transfer.ID),
			slog.String("department", transfer.ToDept),
		)
		return nil
	}
	if err != nil {
		return err
	}

	err = tx.Employees.SetDepartment(ctx, transfer.EmployeeID, dept.ID)
	if errors.Is(err, domain.ErrEmployeeNotFound) {
		s.logger.Warn("transfer employee not found, employee not moved",
			slog.Int64("workflow_id", wf.ID),
			slog.Int64("transfer_id", transfer.ID),
			slog.String("employee_id", transfer.EmployeeID),
		)
		return nil
	}
	if err != nil {
		return err
	}

	s.logger.Info("employee moved by approved transfer",
		slog.Int64("workflow_id", wf.ID),
		slog.String("employee_id", transfer.EmployeeID),
		slog.String("department", dept.Name),
	)
	return nil
}

// Delete удаляет процесс; связанные заявка или перевод остаются
func (s *workflowService) Delete(ctx context.Context, id int64) error {
	return s.store.Workflows.Delete(ctx, id)
}
