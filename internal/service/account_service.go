package service

import (
	"context"
	"strings"

	"github.com/chanlloyd12/backend-repo/internal/domain"
	"github.com/chanlloyd12/backend-repo/internal/dto"
	"github.com/chanlloyd12/backend-repo/internal/repository"
)

// AccountService определяет интерфейс бизнес-логики для учётных записей
type AccountService interface {
	Create(ctx context.Context, req *dto.CreateAccountRequest) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
}

type accountService struct {
	accountRepo repository.AccountRepository
}

// NewAccountService создаёт новый экземпляр сервиса
func NewAccountService(accountRepo repository.AccountRepository) AccountService {
	return &accountService{accountRepo: accountRepo}
}

func (s *accountService) Create(ctx context.Context, req *dto.CreateAccountRequest) (*domain.Account, error) {
	account := &domain.Account{
		Email:  strings.ToLower(strings.TrimSpace(req.Email)),
		Status: domain.AccountActive,
	}
	if req.Status != nil {
		account.Status = domain.AccountStatus(*req.Status)
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

func (s *accountService) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}
