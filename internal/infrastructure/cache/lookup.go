package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecomicro/internal/application/order"
	"github.com/jhoicas/ecomicro/internal/domain/entity"
	"github.com/jhoicas/ecomicro/pkg/logger"
)

var (
	_ order.UserLookup    = (*UserLookup)(nil)
	_ order.ProductLookup = (*ProductLookup)(nil)
)

// UserLookup read-through delante de otro UserLookup. Solo se guardan aciertos:
// los usuarios no se modifican ni se borran, así que una entrada no queda obsoleta.
type UserLookup struct {
	next order.UserLookup
	rdb  redis.Cmdable
	ttl  time.Duration
	log  *logger.Logger
}

// NewUserLookup envuelve next con la caché.
func NewUserLookup(next order.UserLookup, rdb redis.Cmdable, ttl time.Duration, log *logger.Logger) *UserLookup {
	if log == nil {
		log = logger.Nop()
	}
	return &UserLookup{next: next, rdb: rdb, ttl: ttl, log: log}
}

type cachedUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GetUser consulta Redis y, si no está, el lookup envuelto. Los fallos de Redis no se propagan.
func (c *UserLookup) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	var cu cachedUser
	if readCached(ctx, c.rdb, c.log, userKey(id), &cu) {
		return &entity.User{ID: cu.ID, Name: cu.Name, Email: cu.Email}, nil
	}
	u, err := c.next.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	writeCached(ctx, c.rdb, c.log, userKey(id), c.ttl, cachedUser{ID: u.ID, Name: u.Name, Email: u.Email})
	return u, nil
}

// ProductLookup read-through delante de otro ProductLookup (solo aciertos).
type ProductLookup struct {
	next order.ProductLookup
	rdb  redis.Cmdable
	ttl  time.Duration
	log  *logger.Logger
}

// NewProductLookup envuelve next con la caché.
func NewProductLookup(next order.ProductLookup, rdb redis.Cmdable, ttl time.Duration, log *logger.Logger) *ProductLookup {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductLookup{next: next, rdb: rdb, ttl: ttl, log: log}
}

type cachedProduct struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// GetProduct consulta Redis y, si no está, el lookup envuelto.
func (c *ProductLookup) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	var cp cachedProduct
	if readCached(ctx, c.rdb, c.log, productKey(id), &cp) {
		return &entity.Product{ID: cp.ID, Name: cp.Name, Price: cp.Price}, nil
	}
	p, err := c.next.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	writeCached(ctx, c.rdb, c.log, productKey(id), c.ttl, cachedProduct{ID: p.ID, Name: p.Name, Price: p.Price})
	return p, nil
}

func readCached(ctx context.Context, rdb redis.Cmdable, log *logger.Logger, key string, out any) bool {
	raw, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("key", key).Msg("caché no disponible, se consulta el servicio")
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("entrada de caché inválida")
		return false
	}
	return true
}

func writeCached(ctx context.Context, rdb redis.Cmdable, log *logger.Logger, key string, ttl time.Duration, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("no se pudo guardar en caché")
	}
}
