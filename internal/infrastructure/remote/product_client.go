package remote

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecomicro/internal/application/order"
	"github.com/jhoicas/ecomicro/internal/domain/entity"
)

var _ order.ProductLookup = (*ProductClient)(nil)

// ProductClient consulta y da de alta productos en el servicio de productos.
type ProductClient struct {
	client
}

// NewProductClient construye el adaptador.
func NewProductClient(httpClient *http.Client, baseURL string) *ProductClient {
	return &ProductClient{client{service: "product-service", baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}}
}

// price llega como "1500.00"; decimal acepta string o número.
type productPayload struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// GetProduct GET /products/{id}.
func (c *ProductClient) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	var p productPayload
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &entity.Product{ID: p.ID, Name: p.Name, Price: p.Price}, nil
}

// CreateProduct POST /products.
func (c *ProductClient) CreateProduct(ctx context.Context, name string, price decimal.Decimal) (*entity.Product, error) {
	in := struct {
		Name  string `json:"name"`
		Price string `json:"price"`
	}{Name: name, Price: price.StringFixed(2)}

	var p productPayload
	if err := c.do(ctx, http.MethodPost, "/products", in, &p); err != nil {
		return nil, err
	}
	return &entity.Product{ID: p.ID, Name: p.Name, Price: p.Price}, nil
}
