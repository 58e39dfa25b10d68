package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/chanlloyd12/backend-repo/internal/domain"
	"github.com/chanlloyd12/backend-repo/internal/dto"
	"github.com/chanlloyd12/backend-repo/internal/repository"
)

// RequestService определяет интерфейс бизнес-логики для заявок
type RequestService interface {
	Create(ctx context.Context, req *dto.CreateRequestRequest) (*domain.Request, error)
	GetByID(ctx context.Context, id int64) (*domain.Request, error)
	List(ctx context.Context) ([]domain.Request, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Request, error)
	Update(ctx context.Context, id int64, req *dto.UpdateRequestRequest) (*domain.Request, error)
	Delete(ctx context.Context, id int64) error
}

type requestService struct {
	store *repository.Store
}

// NewRequestService создаёт новый экземпляр сервиса
func NewRequestService(store *repository.Store) RequestService {
	return &requestService{store: store}
}

// toItems переводит позиции запроса в доменные; отсутствующее количество равно 1
func toItems(items []dto.RequestItem) []domain.RequestItem {
	result := make([]domain.RequestItem, 0, len(items))
	for _, item := range items {
		qty := 1
		if item.Quantity != nil {
			qty = *item.Quantity
		}
		result = append(result, domain.RequestItem{
			Name:     strings.TrimSpace(item.Name),
			Quantity: qty,
		})
	}
	return result
}

// Create создаёт заявку и процесс согласования одной транзакцией
func (s *requestService) Create(ctx context.Context, req *dto.CreateRequestRequest) (*domain.Request, error) {
	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		return nil, domain.ErrMissingEmployeeID
	}

	reqType := domain.RequestType(req.Type)
	if !reqType.Valid() {
		return nil, domain.ErrInvalidRequestType
	}

	if _, err := s.store.Employees.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	request := &domain.Request{
		Type:       reqType,
		EmployeeID: employeeID,
		Status:     domain.StatusPending,
		Items:      toItems(req.Items),
	}

	err := s.store.InTx(ctx, func(tx *repository.Store) error {
		if err := tx.Requests.Create(ctx, request); err != nil {
			return err
		}
		return tx.Workflows.Create(ctx, domain.NewRequestWorkflow(request))
	})
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return s.store.Requests.GetByID(ctx, request.ID)
}

func (s *requestService) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	return s.store.Requests.GetByID(ctx, id)
}

func (s *requestService) List(ctx context.Context) ([]domain.Request, error) {
	return s.store.Requests.List(ctx)
}

func (s *requestService) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Request, error) {
	if _, err := s.store.Employees.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.store.Requests.ListByEmployee(ctx, employeeID)
}

// Update меняет тип и позиции. Статус заявки повторяет статус процесса и здесь не меняется.
func (s *requestService) Update(ctx context.Context, id int64, req *dto.UpdateRequestRequest) (*domain.Request, error) {
	request, err := s.store.Requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type == nil && req.Items == nil {
		return request, nil
	}

	reqType := request.Type
	if req.Type != nil {
		reqType = domain.RequestType(*req.Type)
		if !reqType.Valid() {
			return nil, domain.ErrInvalidRequestType
		}
	}

	items := request.Items
	if req.Items != nil {
		items = toItems(req.Items)
	}

	if err := s.store.Requests.UpdateContent(ctx, id, reqType, items); err != nil {
		return nil, err
	}

	return s.store.Requests.GetByID(ctx, id)
}

// Delete удаляет заявку; процесс согласования удаляется внешним ключом
func (s *requestService) Delete(ctx context.Context, id int64) error {
	return s.store.Requests.Delete(ctx, id)
}
