package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/ecomicro/internal/application/dto"
	"github.com/jhoicas/ecomicro/internal/domain"
	"github.com/jhoicas/ecomicro/internal/domain/entity"
	"github.com/jhoicas/ecomicro/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo (alta y consulta; no hay update ni delete).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Nombre vacío o precio ausente/negativo: domain.ErrInvalidInput.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price == nil || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{Name: name, Price: in.Price.Round(2)}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(product)
	return &out, nil
}

// GetByID obtiene un producto por ID. domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(product)
	return &out, nil
}

// List lista el catálogo ordenado por ID.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.NewProductResponse(p))
	}
	return out, nil
}
