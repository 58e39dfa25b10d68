package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/chanlloyd12/backend-repo/internal/domain"
	"github.com/chanlloyd12/backend-repo/internal/dto"
	"github.com/chanlloyd12/backend-repo/internal/repository"
)

// employeeIDAttempts - сколько раз пересчитывается идентификатор при конфликте первичного ключа
const employeeIDAttempts = 3

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	GetByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	NextID(ctx context.Context) (string, error)
	Update(ctx context.Context, employeeID string, req *dto.UpdateEmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, employeeID string) error
	AvailableAccounts(ctx context.Context) ([]domain.Account, error)
}

type employeeService struct {
	store *repository.Store
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(store *repository.Store) EmployeeService {
	return &employeeService{store: store}
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return nil, domain.ErrInvalidHireDate
	}

	account, err := s.store.Accounts.GetByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if account.Status != domain.AccountActive {
		return nil, domain.ErrAccountInactive
	}

	employed, err := s.store.Employees.ExistsByAccountID(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	if employed {
		return nil, domain.ErrAccountAlreadyEmployed
	}

	// Подразделение передаётся по названию и необязательно
	var departmentID *int64
	if req.Department != nil {
		if name := strings.TrimSpace(*req.Department); name != "" {
			dept, err := s.store.Departments.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			departmentID = &dept.ID
		}
	}

	status := domain.EmployeeActive
	if req.Status != nil {
		status = domain.EmployeeStatus(*req.Status)
	}

	emp := &domain.Employee{
		AccountID:    account.ID,
		DepartmentID: departmentID,
		Position:     strings.TrimSpace(req.Position),
		HireDate:     hireDate,
		Status:       status,
	}

	// Идентификатор вычисляется внутри транзакции вставки; если параллельный запрос
	// успел занять его раньше, первичный ключ отклонит вставку и попытка повторится
	backoff := retry.WithMaxRetries(employeeIDAttempts-1, retry.NewConstant(10*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := s.store.InTx(ctx, func(tx *repository.Store) error {
			last, err := tx.Employees.LastEmployeeID(ctx)
			if err != nil {
				return err
			}
			next, err := domain.NextEmployeeID(last)
			if err != nil {
				return err
			}
			emp.EmployeeID = next
			return tx.Employees.Create(ctx, emp)
		})
		if !errors.Is(err, domain.ErrEmployeeIDConflict) {
			return err
		}

		// Конфликт мог возникнуть и по account_id
		employed, checkErr := s.store.Employees.ExistsByAccountID(ctx, account.ID)
		if checkErr != nil {
			return checkErr
		}
		if employed {
			return domain.ErrAccountAlreadyEmployed
		}
		return retry.RetryableError(err)
	})
	if err != nil {
		return nil, err
	}

	return s.store.Employees.GetByID(ctx, emp.EmployeeID)
}

func (s *employeeService) GetByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return s.store.Employees.GetByID(ctx, employeeID)
}

func (s *employeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.store.Employees.List(ctx)
}

// NextID возвращает идентификатор, который получит следующий сотрудник.
// Значение не резервируется.
func (s *employeeService) NextID(ctx context.Context) (string, error) {
	last, err := s.store.Employees.LastEmployeeID(ctx)
	if err != nil {
		return "", err
	}
	return domain.NextEmployeeID(last)
}

// Update меняет должность, дату найма и статус. Подразделение меняется только
// одобренным переводом.
func (s *employeeService) Update(ctx context.Context, employeeID string, req *dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	if req.Department != nil {
		return nil, domain.ErrDepartmentReadOnly
	}

	fields := make(map[string]any)
	if req.Position != nil {
		fields["position"] = strings.TrimSpace(*req.Position)
	}
	if req.HireDate != nil {
		hireDate, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return nil, domain.ErrInvalidHireDate
		}
		fields["hire_date"] = hireDate
	}
	if req.Status != nil {
		fields["status"] = domain.EmployeeStatus(*req.Status)
	}

	if _, err := s.store.Employees.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.store.Employees.Update(ctx, employeeID, fields); err != nil {
			return nil, err
		}
	}

	return s.store.Employees.GetByID(ctx, employeeID)
}

// Delete удаляет сотрудника вместе с его заявками, переводами и процессами
func (s *employeeService) Delete(ctx context.Context, employeeID string) error {
	return s.store.Employees.Delete(ctx, employeeID)
}

// AvailableAccounts возвращает активные учётные записи без профиля сотрудника
func (s *employeeService) AvailableAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.store.Accounts.ListAvailable(ctx)
}
