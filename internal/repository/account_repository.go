package repository

import (
	"context"
	"errors"

	"github.com/chanlloyd12/backend-repo/internal/domain"
	"gorm.io/gorm"
)

// AccountRepository определяет интерфейс для работы с учётными записями
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	ListAvailable(ctx context.Context) ([]domain.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository создаёт новый экземпляр репозитория
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	err := r.db.WithContext(ctx).Create(account).Error
	if isUniqueViolation(err) {
		return domain.ErrDuplicateAccountEmail
	}
	return err
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	var account domain.Account
	err := r.db.WithContext(ctx).First(&account, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// ListAvailable возвращает активные учётные записи, к которым ещё не привязан сотрудник
func (r *accountRepository) ListAvailable(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	employed := r.db.Model(&domain.Employee{}).Select("account_id")
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.AccountActive).
		Where("id NOT IN (?)", employed).
		Order("id ASC").
		Find(&accounts).Error
	return accounts, err
}
