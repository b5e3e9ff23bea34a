package usecase

import (
	"context"

	"github.com/jhoicas/ecomicro/internal/application/dto"
	"github.com/jhoicas/ecomicro/internal/domain"
	"github.com/jhoicas/ecomicro/internal/domain/repository"
)

// InventoryUseCase operaciones del servicio de inventario.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// Get devuelve el stock de un producto.
func (uc *InventoryUseCase) Get(ctx context.Context, productID int64) (*dto.InventoryResponse, error) {
	it, err := uc.repo.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := dto.NewInventoryResponse(it)
	return &out, nil
}

// List devuelve el inventario completo ordenado por product_id.
func (uc *InventoryUseCase) List(ctx context.Context) ([]dto.InventoryResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewInventoryResponse(it))
	}
	return out, nil
}

// SetQuantity escritura absoluta. Cantidad negativa: domain.ErrInvalidInput.
func (uc *InventoryUseCase) SetQuantity(ctx context.Context, productID, quantity int64) error {
	if productID <= 0 || quantity < 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.Set(ctx, productID, quantity)
}

// AddStock crea la fila o suma quantity a la existente.
func (uc *InventoryUseCase) AddStock(ctx context.Context, productID, quantity int64) (*dto.InventoryResponse, error) {
	if productID <= 0 || quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	it, err := uc.repo.Add(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}
	out := dto.NewInventoryResponse(it)
	return &out, nil
}

// Reserve descuenta quantity de forma atómica si alcanza el stock.
// Errores: domain.ErrInvalidInput, domain.ErrNotFound, domain.ErrInsufficientStock.
func (uc *InventoryUseCase) Reserve(ctx context.Context, productID, quantity int64) (*dto.InventoryResponse, error) {
	if productID <= 0 || quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	it, err := uc.repo.Reserve(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}
	out := dto.NewInventoryResponse(it)
	return &out, nil
}
