package repository

import (
	"context"
	"errors"

	"github.com/chanlloyd12/backend-repo/internal/domain"
	"gorm.io/gorm"
)

// TransferRepository определяет интерфейс для работы с переводами
type TransferRepository interface {
	Create(ctx context.Context, transfer *domain.Transfer) error
	GetByID(ctx context.Context, id int64) (*domain.Transfer, error)
	List(ctx context.Context) ([]domain.Transfer, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Transfer, error)
	HasPending(ctx context.Context, employeeID string) (bool, error)
	HasPendingRoute(ctx context.Context, employeeID, fromDept, toDept string) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Delete(ctx context.Context, id int64) error
}

type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository создаёт новый экземпляр репозитория
func NewTransferRepository(db *gorm.DB) TransferRepository {
	return &transferRepository{db: db}
}

func withTransferRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Employee.Account").Preload("Employee.Department")
}

// Create сохраняет перевод. Частичный уникальный индекс допускает один
// ожидающий перевод на сотрудника, его нарушение означает гонку двух запросов.
func (r *transferRepository) Create(ctx context.Context, transfer *domain.Transfer) error {
	err := r.db.WithContext(ctx).Omit("Employee").Create(transfer).Error
	if isUniqueViolation(err) {
		return domain.ErrPendingTransferExists
	}
	return err
}

func (r *transferRepository) GetByID(ctx context.Context, id int64) (*domain.Transfer, error) {
	var transfer domain.Transfer
	err := withTransferRelations(r.db.WithContext(ctx)).First(&transfer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransferNotFound
		}
		return nil, err
	}
	return &transfer, nil
}

func (r *transferRepository) List(ctx context.Context) ([]domain.Transfer, error) {
	var transfers []domain.Transfer
	err := withTransferRelations(r.db.WithContext(ctx)).
		Order("created_at DESC, id DESC").
		Find(&transfers).Error
	return transfers, err
}

func (r *transferRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Transfer, error) {
	var transfers []domain.Transfer
	err := withTransferRelations(r.db.WithContext(ctx)).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC, id DESC").
		Find(&transfers).Error
	return transfers, err
}

func (r *transferRepository) HasPending(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Transfer{}).
		Where("employee_id = ? AND status = ?", employeeID, domain.StatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *transferRepository) HasPendingRoute(ctx context.Context, employeeID, fromDept, toDept string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Transfer{}).
		Where("employee_id = ? AND from_dept = ? AND to_dept = ? AND status = ?",
			employeeID, fromDept, toDept, domain.StatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *transferRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Transfer{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.ErrPendingTransferExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTransferNotFound
	}
	return nil
}

func (r *transferRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Transfer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTransferNotFound
	}
	return nil
}
