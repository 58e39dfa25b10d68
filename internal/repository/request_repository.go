package repository

import (
	"context"
	"errors"

	"github.com/chanlloyd12/backend-repo/internal/domain"
	"gorm.io/gorm"
)

// RequestRepository определяет интерфейс для работы с заявками
type RequestRepository interface {
	Create(ctx context.Context, req *domain.Request) error
	GetByID(ctx context.Context, id int64) (*domain.Request, error)
	List(ctx context.Context) ([]domain.Request, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Request, error)
	UpdateContent(ctx context.Context, id int64, reqType domain.RequestType, items []domain.RequestItem) error
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Delete(ctx context.Context, id int64) error
}

type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository создаёт новый экземпляр репозитория
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

// withRequestRelations подгружает сотрудника с учётной записью и подразделением
func withRequestRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Employee.Account").Preload("Employee.Department")
}

func (r *requestRepository) Create(ctx context.Context, req *domain.Request) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(req).Error
}

func (r *requestRepository) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	var req domain.Request
	err := withRequestRelations(r.db.WithContext(ctx)).First(&req, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *requestRepository) List(ctx context.Context) ([]domain.Request, error) {
	var requests []domain.Request
	err := withRequestRelations(r.db.WithContext(ctx)).
		Order("created_at DESC, id DESC").
		Find(&requests).Error
	return requests, err
}

func (r *requestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Request, error) {
	var requests []domain.Request
	err := withRequestRelations(r.db.WithContext(ctx)).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC, id DESC").
		Find(&requests).Error
	return requests, err
}

// UpdateContent меняет тип и позиции заявки. Статус здесь не трогается.
func (r *requestRepository) UpdateContent(ctx context.Context, id int64, reqType domain.RequestType, items []domain.RequestItem) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Request{ID: id}).
		Select("type", "items").
		Updates(&domain.Request{Type: reqType, Items: items})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Request{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *requestRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Request{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}
