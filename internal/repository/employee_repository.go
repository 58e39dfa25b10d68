package repository

import (
	"context"
	"errors"

	"github.com/chanlloyd12/backend-repo/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	LastEmployeeID(ctx context.Context) (string, error)
	ExistsByAccountID(ctx context.Context, accountID int64) (bool, error)
	SetDepartment(ctx context.Context, employeeID string, departmentID int64) error
	Update(ctx context.Context, employeeID string, fields map[string]any) error
	Delete(ctx context.Context, employeeID string) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func withEmployeeRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Account").Preload("Department")
}

// Create сохраняет сотрудника. Конфликт первичного ключа или account_id
// возвращается как ErrEmployeeIDConflict; различает их вызывающая сторона.
func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	err := r.db.WithContext(ctx).Omit("Account", "Department").Create(emp).Error
	if isUniqueViolation(err) {
		return domain.ErrEmployeeIDConflict
	}
	return err
}

// GetByID возвращает сотрудника вместе с учётной записью и подразделением
func (r *employeeRepository) GetByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	var emp domain.Employee
	err := withEmployeeRelations(r.db.WithContext(ctx)).
		Where("employee_id = ?", employeeID).
		First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := withEmployeeRelations(r.db.WithContext(ctx)).
		Order("employee_id ASC").
		Find(&employees).Error
	return employees, err
}

// LastEmployeeID возвращает наибольший идентификатор; длина сортируется первой, чтобы EMP1000 > EMP999
func (r *employeeRepository) LastEmployeeID(ctx context.Context) (string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Order("LENGTH(employee_id) DESC").
		Order("employee_id DESC").
		Limit(1).
		Pluck("employee_id", &ids).Error
	if err != nil || len(ids) == 0 {
		return "", err
	}
	return ids[0], nil
}

func (r *employeeRepository) ExistsByAccountID(ctx context.Context, accountID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).Where("account_id = ?", accountID).Count(&count).Error
	return count > 0, err
}

func (r *employeeRepository) SetDepartment(ctx context.Context, employeeID string, departmentID int64) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("employee_id = ?", employeeID).
		Update("department_id", departmentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// Update меняет переданные колонки сотрудника
func (r *employeeRepository) Update(ctx context.Context, employeeID string, fields map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("employee_id = ?", employeeID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// Delete удаляет сотрудника; его заявки, переводы и процессы удаляются внешними ключами
func (r *employeeRepository) Delete(ctx context.Context, employeeID string) error {
	result := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&domain.Employee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
