package order_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/jhoicas/ecomicro/internal/domain/entity"
	"github.com/jhoicas/ecomicro/internal/infrastructure/memory"
)

var errCaido = errors.New("servicio no disponible")

// lookups adapta los almacenes en memoria a UserLookup y ProductLookup.
type lookups struct {
	users    *memory.UserStore
	products *memory.ProductStore
	userErr  error
}

func (l *lookups) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	if l.userErr != nil {
		return nil, l.userErr
	}
	return l.users.GetByID(ctx, id)
}

func (l *lookups) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	return l.products.GetByID(ctx, id)
}

// gateway InventoryGateway sobre InventoryStore con puntos de inyección para fallos y carreras.
type gateway struct {
	store       *memory.InventoryStore
	setErr      error
	afterGet    func()
	gets, sets  atomic.Int64
	reserveCall atomic.Int64
}

func (g *gateway) GetStock(ctx context.Context, productID int64) (*entity.InventoryItem, error) {
	g.gets.Add(1)
	it, err := g.store.Get(ctx, productID)
	if err == nil && g.afterGet != nil {
		g.afterGet()
	}
	return it, err
}

func (g *gateway) SetQuantity(ctx context.Context, productID, quantity int64) error {
	g.sets.Add(1)
	if g.setErr != nil {
		return g.setErr
	}
	return g.store.Set(ctx, productID, quantity)
}

func (g *gateway) Reserve(ctx context.Context, productID, quantity int64) (*entity.InventoryItem, error) {
	g.reserveCall.Add(1)
	return g.store.Reserve(ctx, productID, quantity)
}

// failingOrders OrderRepository cuyo Append siempre falla.
type failingOrders struct {
	*memory.OrderStore
}

func (failingOrders) Append(context.Context, int64, int64, int64) (*entity.Order, error) {
	return nil, errCaido
}

// barrier bloquea a n llamadores hasta que todos lleguen.
func barrier(n int) func() {
	var wg sync.WaitGroup
	wg.Add(n)
	return func() {
		wg.Done()
		wg.Wait()
	}
}
