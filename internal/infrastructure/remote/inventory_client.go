package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/ecomicro/internal/application/order"
	"github.com/jhoicas/ecomicro/internal/domain"
	"github.com/jhoicas/ecomicro/internal/domain/entity"
)

var _ order.InventoryGateway = (*InventoryClient)(nil)

// InventoryClient acceso al servicio de inventario.
type InventoryClient struct {
	client
}

// NewInventoryClient construye el adaptador.
func NewInventoryClient(httpClient *http.Client, baseURL string) *InventoryClient {
	return &InventoryClient{client{service: "inventory-service", baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}}
}

type inventoryPayload struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

func (p inventoryPayload) entity() *entity.InventoryItem {
	return &entity.InventoryItem{ProductID: p.ProductID, Quantity: p.Quantity}
}

type quantityPayload struct {
	Quantity int64 `json:"quantity"`
}

// GetStock GET /inventory/{product_id}.
func (c *InventoryClient) GetStock(ctx context.Context, productID int64) (*entity.InventoryItem, error) {
	var p inventoryPayload
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/inventory/%d", productID), nil, &p); err != nil {
		return nil, err
	}
	return p.entity(), nil
}

// SetQuantity PUT /inventory/{product_id} con la cantidad absoluta.
func (c *InventoryClient) SetQuantity(ctx context.Context, productID, quantity int64) error {
	var ack struct {
		Success bool `json:"success"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/inventory/%d", productID), quantityPayload{Quantity: quantity}, &ack); err != nil {
		return err
	}
	if !ack.Success {
		return fmt.Errorf("%s: PUT /inventory/%d sin confirmación", c.service, productID)
	}
	return nil
}

// Reserve POST /inventory/{product_id}/reserve. 409 se traduce a domain.ErrInsufficientStock.
func (c *InventoryClient) Reserve(ctx context.Context, productID, quantity int64) (*entity.InventoryItem, error) {
	var p inventoryPayload
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/inventory/%d/reserve", productID), quantityPayload{Quantity: quantity}, &p)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Status == http.StatusConflict {
			return nil, domain.ErrInsufficientStock
		}
		return nil, err
	}
	return p.entity(), nil
}

// AddStock POST /inventory: crea la fila o suma la cantidad.
func (c *InventoryClient) AddStock(ctx context.Context, productID, quantity int64) (*entity.InventoryItem, error) {
	var p inventoryPayload
	if err := c.do(ctx, http.MethodPost, "/inventory", inventoryPayload{ProductID: productID, Quantity: quantity}, &p); err != nil {
		return nil, err
	}
	return p.entity(), nil
}
