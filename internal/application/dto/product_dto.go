package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecomicro/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto. Price acepta número o string ("1500.00").
type CreateProductRequest struct {
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price" swaggertype:"string" example:"1500.00"`
}

// ProductResponse salida de un producto. Price con dos decimales, como string.
type ProductResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price" example:"1500.00"`
}

// NewProductResponse mapea la entidad al DTO.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price.StringFixed(2)}
}
