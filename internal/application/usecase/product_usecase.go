package usecase

import (
	"strings"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create añade un producto. CurrentPrice se guarda tal cual: ya viene
// con el descuento aplicado y no se recalcula desde RawPrice/Discount.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.LikesCount < 0 {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		Model:        in.Model,
		Category:     in.Category,
		Name:         in.Name,
		CurrentPrice: in.CurrentPrice,
		RawPrice:     in.RawPrice,
		Discount:     in.Discount,
		LikesCount:   in.LikesCount,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID, o nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Search busca productos por subcadena del nombre, sin distinguir
// mayúsculas.
func (uc *ProductUseCase) Search(keyword string) ([]dto.ProductResponse, error) {
	products, err := uc.repo.SearchByName(keyword)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// List pagina el catálogo completo.
func (uc *ProductUseCase) List(pageNumber int) (*dto.ProductListResponse, error) {
	page, err := uc.repo.List(pageNumber)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(page.Items)),
		Page:  dto.PageResponse{CurrentPage: page.CurrentPage, TotalPages: page.TotalPages},
	}
	for _, p := range page.Items {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// DeleteAll vacía el catálogo.
func (uc *ProductUseCase) DeleteAll() error {
	return uc.repo.DeleteAll()
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Model:        p.Model,
		Category:     p.Category,
		Name:         p.Name,
		CurrentPrice: p.CurrentPrice,
		RawPrice:     p.RawPrice,
		Discount:     p.Discount,
		LikesCount:   p.LikesCount,
	}
}
