package usecase

import (
	"strings"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// OrderUseCase casos de uso de órdenes de compra. Las referencias a
// usuario y producto no se validan contra los otros repositorios: una
// orden huérfana se acepta, igual que en los archivos históricos.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// Create registra una compra del usuario con el timestamp actual.
func (uc *OrderUseCase) Create(userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(in.ProductID) == "" {
		return nil, domain.ErrInvalidInput
	}
	order := &entity.Order{
		UserID:    userID,
		ProductID: in.ProductID,
		OrderedAt: auth.Now(),
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ListForUser pagina las órdenes de un usuario: filtra primero, pagina
// después.
func (uc *OrderUseCase) ListForUser(userID string, pageNumber int) (*dto.OrderListResponse, error) {
	page, err := uc.repo.ListByUser(userID, pageNumber)
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(page.Items, page.CurrentPage, page.TotalPages), nil
}

// ListAll pagina todas las órdenes (uso administrativo).
func (uc *OrderUseCase) ListAll(pageNumber int) (*dto.OrderListResponse, error) {
	page, err := uc.repo.ListAll(pageNumber)
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(page.Items, page.CurrentPage, page.TotalPages), nil
}

// Delete elimina una orden por ID.
func (uc *OrderUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// DeleteAll elimina todas las órdenes.
func (uc *OrderUseCase) DeleteAll() error {
	return uc.repo.DeleteAll()
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		ProductID: o.ProductID,
		OrderedAt: o.OrderedAt,
	}
}

func toOrderListResponse(items []*entity.Order, current, total int) *dto.OrderListResponse {
	out := &dto.OrderListResponse{
		Items: make([]dto.OrderResponse, 0, len(items)),
		Page:  dto.PageResponse{CurrentPage: current, TotalPages: total},
	}
	for _, o := range items {
		out.Items = append(out.Items, *toOrderResponse(o))
	}
	return out
}
