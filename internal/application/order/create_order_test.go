package order_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"pgregory.net/rapid"

	"github.com/jhoicas/ecomicro/internal/application/dto"
	"github.com/jhoicas/ecomicro/internal/application/order"
	"github.com/jhoicas/ecomicro/internal/domain"
	"github.com/jhoicas/ecomicro/internal/domain/repository"
	"github.com/jhoicas/ecomicro/internal/infrastructure/memory"
	"github.com/jhoicas/ecomicro/pkg/logger"
)

var strategies = []order.Strategy{order.StrategyReserveFirst, order.StrategyCheckThenSet}

type fixture struct {
	lookups *lookups
	gw      *gateway
	orders  *memory.OrderStore
	uc      *order.CreateOrderUseCase
}

func newFixture(strategy order.Strategy, stock map[int64]int64) *fixture {
	f := &fixture{
		lookups: &lookups{
			users:    memory.NewUserStore(memory.SampleUsers...),
			products: memory.NewProductStore(memory.SampleProducts...),
		},
		gw:     &gateway{store: memory.NewInventoryStore(stock)},
		orders: memory.NewOrderStore(),
	}
	f.uc = order.NewCreateOrderUseCase(f.lookups, f.lookups, f.gw, f.orders, strategy, logger.Nop())
	return f
}

func (f *fixture) withOrders(repo repository.OrderRepository, strategy order.Strategy) {
	f.uc = order.NewCreateOrderUseCase(f.lookups, f.lookups, f.gw, repo, strategy, logger.Nop())
}

func (f *fixture) stock(t require.TestingT, productID int64) int64 {
	it, err := f.gw.store.Get(context.Background(), productID)
	require.NoError(t, err)
	return it.Quantity
}

func (f *fixture) orderCount(t require.TestingT) int {
	list, err := f.orders.List(context.Background())
	require.NoError(t, err)
	return len(list)
}

// ─── Escenarios ──────────────────────────────────────────────────────────────

func TestCreate_OrdenAceptadaDescuentaStock(t *testing.T) {
	for _, s := range strategies {
		t.Run(string(s), func(t *testing.T) {
			f := newFixture(s, map[int64]int64{1: 10})
			out, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{UserID: 1, ProductID: 1, Quantity: 3})
			require.NoError(t, err)

			assert.Equal(t, int64(1), out.ID)
			assert.Equal(t, int64(1), out.UserID)
			assert.Equal(t, int64(1), out.ProductID)
			assert.Equal(t, int64(3), out.Quantity)
			assert.False(t, out.CreatedAt.IsZero())
			assert.Equal(t, int64(7), f.stock(t, 1))
			assert.Equal(t, 1, f.orderCount(t))
		})
	}
}

func TestCreate_StockInsuficienteNoModificaNada(t *testing.T) {
	for _, s := range strategies {
		t.Run(string(s), func(t *testing.T) {
			f := newFixture(s, map[int64]int64{1: 2})
			_, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{UserID: 1, ProductID: 1, Quantity: 5})
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
			assert.Equal(t, int64(2), f.stock(t, 1))
			assert.Equal(t, 0, f.orderCount(t))
			assert.Equal(t, int64(0), f.gw.sets.Load())
		})
	}
}

func TestCreate_ReferenciasInexistentes(t *testing.T) {
	cases := []struct {
		name   string
		in     dto.CreateOrderRequest
		entity string
	}{
		{"usuario", dto.CreateOrderRequest{UserID: 999, ProductID: 1, Quantity: 1}, domain.EntityUser},
		{"producto", dto.CreateOrderRequest{UserID: 1, ProductID: 999, Quantity: 1}, domain.EntityProduct},
		{"inventario", dto.CreateOrderRequest{UserID: 1, ProductID: 2, Quantity: 1}, domain.EntityInventory},
	}
	for _, s := range strategies {
		for _, tc := range cases {
			t.Run(string(s)+"/"+tc.name, func(t *testing.T) {
				f := newFixture(s, map[int64]int64{1: 10})
				_, err := f.uc.Create(context.Background(), tc.in)
				require.Error(t, err)

				var ref *domain.ReferenceNotFoundError
				require.ErrorAs(t, err, &ref)
				assert.Equal(t, tc.entity, ref.Entity)
				assert.ErrorIs(t, err, domain.ErrNotFound)
				assert.Equal(t, 0, f.orderCount(t))
				assert.Equal(t, int64(10), f.stock(t, 1))
			})
		}
	}
}

func TestCreate_UsuarioInexistenteNoConsultaInventario(t *testing.T) {
	f := newFixture(order.StrategyCheckThenSet, map[int64]int64{1: 10})
	_, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{UserID: 999, ProductID: 1, Quantity: 1})
	assert.True(t, domain.IsReferenceNotFound(err))
	assert.Equal(t, int64(0), f.gw.gets.Load())
	assert.Equal(t, int64(0), f.gw.reserveCall.Load())
}

func TestCreate_EntradaInvalida(t *testing.T) {
	f := newFixture(order.StrategyReserveFirst, map[int64]int64{1: 10})
	for _, in := range []dto.CreateOrderRequest{
		{UserID: 0, ProductID: 1, Quantity: 1},
		{UserID: 1, ProductID: -1, Quantity: 1},
		{UserID: 1, ProductID: 1, Quantity: 0},
	} {
		_, err := f.uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Equal(t, 0, f.orderCount(t))
}

func TestCreate_FalloDeColaboradorNoEsReferencia(t *testing.T) {
	f := newFixture(order.StrategyReserveFirst, map[int64]int64{1: 10})
	f.lookups.userErr = errCaido

	_, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{UserID: 1, ProductID: 1, Quantity: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, errCaido)
	assert.False(t, domain.IsReferenceNotFound(err))
	assert.NotErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 0, f.orderCount(t))
}

// ─── Fallos parciales (sin compensación) ─────────────────────────────────────

func TestCheckThenSet_FalloDeInventarioDejaLaOrden(t *testing.T) {
	f := newFixture(order.StrategyCheckThenSet, map[int64]int64{1: 10})
	f.gw.setErr = errCaido

	_, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{UserID: 1, ProductID: 1, Quantity: 4})
	assert.ErrorIs(t, err, errCaido)
	assert.Equal(t, 1, f.orderCount(t), "la orden ya guardada no se revierte")
	assert.Equal(t, int64(10), f.stock(t, 1))
}

func TestReserveFirst_FalloAlGuardarDejaStockReservado(t *testing.T) {
	f := newFixture(order.StrategyReserveFirst, map[int64]int64{1: 10})
	f.withOrders(failingOrders{f.orders}, order.StrategyReserveFirst)

	_, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{UserID: 1, ProductID: 1, Quantity: 4})
	assert.ErrorIs(t, err, errCaido)
	assert.Equal(t, 0, f.orderCount(t))
	assert.Equal(t, int64(6), f.stock(t, 1), "sub-contado, nunca sobrevendido")
}

func TestCheckThenSet_EscribeElValorLeidoSinReleer(t *testing.T) {
	f := newFixture(order.StrategyCheckThenSet, map[int64]int64{1: 10})
	// Reposición concurrente entre la lectura y la escritura absoluta.
	f.gw.afterGet = func() {
		_, _ = f.gw.store.Add(context.Background(), 1, 5)
	}

	_, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{UserID: 1, ProductID: 1, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(7), f.stock(t, 1), "la reposición se pierde: gana la última escritura")
}

// ─── Concurrencia ────────────────────────────────────────────────────────────

func runConcurrentPair(f *fixture, quantity int64) []error {
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.Create(context.Background(), dto.CreateOrderRequest{UserID: 1, ProductID: 1, Quantity: quantity})
		}(i)
	}
	wg.Wait()
	return errs
}

func TestCheckThenSet_CarreraVendeDeMas(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newFixture(order.StrategyCheckThenSet, map[int64]int64{1: 10})
	f.gw.afterGet = barrier(2)

	errs := runConcurrentPair(f, 6)
	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Equal(t, 2, f.orderCount(t), "12 unidades vendidas con stock 10")
	assert.Equal(t, int64(4), f.stock(t, 1))
}

func TestReserveFirst_CarreraSoloUnaGana(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newFixture(order.StrategyReserveFirst, map[int64]int64{1: 10})
	errs := runConcurrentPair(f, 6)

	var ok, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, domain.ErrInsufficientStock):
			rejected++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, 1, f.orderCount(t))
	assert.Equal(t, int64(4), f.stock(t, 1))
}

func TestReserveFirst_MuchasOrdenesNuncaSobrevenden(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newFixture(order.StrategyReserveFirst, map[int64]int64{1: 25})
	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.uc.Create(context.Background(), dto.CreateOrderRequest{UserID: 2, ProductID: 1, Quantity: 1})
		}()
	}
	wg.Wait()

	assert.Equal(t, 25, f.orderCount(t))
	assert.Equal(t, int64(0), f.stock(t, 1))
}

// ─── Propiedades ─────────────────────────────────────────────────────────────

func TestCreate_PropiedadesDeStock(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := strategies[rapid.IntRange(0, len(strategies)-1).Draw(t, "strategy")]
		initial := rapid.Int64Range(0, 50).Draw(t, "stock")
		quantity := rapid.Int64Range(1, 60).Draw(t, "quantity")
		userID := rapid.Int64Range(1, 3).Draw(t, "user_id")

		f := newFixture(s, map[int64]int64{1: initial})
		out, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{UserID: userID, ProductID: 1, Quantity: quantity})

		switch {
		case userID == 3:
			require.True(t, domain.IsReferenceNotFound(err))
			require.Equal(t, initial, f.stock(t, 1))
			require.Equal(t, 0, f.orderCount(t))
		case quantity > initial:
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
			require.Equal(t, initial, f.stock(t, 1))
			require.Equal(t, 0, f.orderCount(t))
		default:
			require.NoError(t, err)
			require.Equal(t, quantity, out.Quantity)
			require.Equal(t, initial-quantity, f.stock(t, 1))
			require.Equal(t, 1, f.orderCount(t))
		}
	})
}
