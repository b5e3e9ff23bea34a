package order

import (
	"context"

	"github.com/jhoicas/ecomicro/internal/application/dto"
	"github.com/jhoicas/ecomicro/internal/domain/repository"
)

// ListOrdersUseCase lectura de todas las órdenes, la más reciente primero.
type ListOrdersUseCase struct {
	orders repository.OrderRepository
}

// NewListOrdersUseCase construye el caso de uso.
func NewListOrdersUseCase(orders repository.OrderRepository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orders: orders}
}

// List devuelve las órdenes (created_at DESC, id DESC).
func (uc *ListOrdersUseCase) List(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := uc.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.NewOrderResponse(o))
	}
	return out, nil
}
