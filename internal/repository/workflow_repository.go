package repository

import (
	"context"
	"errors"

	"github.com/chanlloyd12/backend-repo/internal/domain"
	"gorm.io/gorm"
)

// WorkflowRepository определяет интерфейс для работы с процессами согласования
type WorkflowRepository interface {
	Create(ctx context.Context, wf *domain.Workflow) error
	GetByID(ctx context.Context, id int64) (*domain.Workflow, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.Workflow, error)
	List(ctx context.Context) ([]domain.Workflow, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Workflow, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
}

type workflowRepository struct {
	db *gorm.DB
}

// NewWorkflowRepository создаёт новый экземпляр репозитория
func NewWorkflowRepository(db *gorm.DB) WorkflowRepository {
	return &workflowRepository{db: db}
}

func withWorkflowRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Employee.Account").
		Preload("Employee.Department").
		Preload("Request").
		Preload("Transfer")
}

func (r *workflowRepository) Create(ctx context.Context, wf *domain.Workflow) error {
	return r.db.WithContext(ctx).Omit("Employee", "Request", "Transfer").Create(wf).Error
}

// GetByID возвращает процесс со связанными сотрудником, заявкой и переводом
func (r *workflowRepository) GetByID(ctx context.Context, id int64) (*domain.Workflow, error) {
	var wf domain.Workflow
	err := withWorkflowRelations(r.db.WithContext(ctx)).First(&wf, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWorkflowNotFound
		}
		return nil, err
	}
	return &wf, nil
}

// GetForUpdate читает процесс без связей и блокирует строку до конца транзакции
func (r *workflowRepository) GetForUpdate(ctx context.Context, id int64) (*domain.Workflow, error) {
	var wf domain.Workflow
	err := lockForUpdate(r.db.WithContext(ctx)).First(&wf, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWorkflowNotFound
		}
		return nil, err
	}
	return &wf, nil
}

func (r *workflowRepository) List(ctx context.Context) ([]domain.Workflow, error) {
	var workflows []domain.Workflow
	err := withWorkflowRelations(r.db.WithContext(ctx)).
		Order("created_at DESC, id DESC").
		Find(&workflows).Error
	return workflows, err
}

func (r *workflowRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Workflow, error) {
	var workflows []domain.Workflow
	err := withWorkflowRelations(r.db.WithContext(ctx)).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC, id DESC").
		Find(&workflows).Error
	return workflows, err
}

// Update меняет только переданные колонки
func (r *workflowRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Workflow{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrWorkflowNotFound
	}
	return nil
}

func (r *workflowRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Workflow{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrWorkflowNotFound
	}
	return nil
}
