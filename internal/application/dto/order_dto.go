package dto

import (
	"time"

	"github.com/jhoicas/ecomicro/internal/domain/entity"
)

// CreateOrderRequest cuerpo de POST /orders.
type CreateOrderRequest struct {
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// NewOrderResponse mapea la entidad al DTO.
func NewOrderResponse(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		ProductID: o.ProductID,
		Quantity:  o.Quantity,
		CreatedAt: o.CreatedAt,
	}
}
