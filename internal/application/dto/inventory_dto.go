package dto

import "github.com/jhoicas/ecomicro/internal/domain/entity"

// InventoryResponse stock de un producto.
type InventoryResponse struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// NewInventoryResponse mapea la entidad al DTO.
func NewInventoryResponse(it *entity.InventoryItem) InventoryResponse {
	return InventoryResponse{ProductID: it.ProductID, Quantity: it.Quantity}
}

// SetQuantityRequest cuerpo de PUT /inventory/{product_id}.
type SetQuantityRequest struct {
	Quantity *int64 `json:"quantity"`
}

// AddStockRequest cuerpo de POST /inventory (inserta o suma).
type AddStockRequest struct {
	ProductID *int64 `json:"product_id"`
	Quantity  *int64 `json:"quantity"`
}

// ReserveRequest cuerpo de POST /inventory/{product_id}/reserve.
type ReserveRequest struct {
	Quantity int64 `json:"quantity"`
}
