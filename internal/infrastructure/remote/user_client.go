package remote

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/ecomicro/internal/application/order"
	"github.com/jhoicas/ecomicro/internal/domain/entity"
)

var _ order.UserLookup = (*UserClient)(nil)

// UserClient consulta el servicio de usuarios (GET /users/{id}).
type UserClient struct {
	client
}

// NewUserClient construye el adaptador. baseURL sin barra final, p. ej. http://user-service:8083.
func NewUserClient(httpClient *http.Client, baseURL string) *UserClient {
	return &UserClient{client{service: "user-service", baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}}
}

type userPayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GetUser devuelve domain.ErrNotFound (vía StatusError) si el servicio responde 404.
func (c *UserClient) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	var p userPayload
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &entity.User{ID: p.ID, Name: p.Name, Email: p.Email}, nil
}
