package postgres_test

import (
	"context"
	"math"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecomicro/internal/domain"
	"github.com/jhoicas/ecomicro/internal/domain/entity"
	"github.com/jhoicas/ecomicro/internal/infrastructure/postgres"
	"github.com/jhoicas/ecomicro/pkg/config"
)

// setupPool conecta a TEST_DATABASE_URL y deja las cuatro tablas vacías. Sin base disponible el test se omite.
func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	if err != nil {
		t.Skipf("PostgreSQL no disponible: %v", err)
	}
	t.Cleanup(pool.Close)

	runner := postgres.NewTxRunner(pool)
	for _, s := range []postgres.Schema{postgres.ProductsSchema, postgres.UsersSchema, postgres.InventorySchema, postgres.OrdersSchema} {
		_, err := postgres.Bootstrap(ctx, runner, s, false)
		require.NoError(t, err)
		_, err = pool.Exec(ctx, "TRUNCATE "+s.Table+" RESTART IDENTITY")
		require.NoError(t, err)
	}
	return pool
}

// ─── Productos y usuarios ────────────────────────────────────────────────────

func TestProductRepo_CreateYListarPorID(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	repo := postgres.NewProductRepository(pool)

	laptop := &entity.Product{Name: "Laptop", Price: decimal.RequireFromString("1500")}
	require.NoError(t, repo.Create(ctx, laptop))
	require.NoError(t, repo.Create(ctx, &entity.Product{Name: "Phone", Price: decimal.RequireFromString("700.5")}))
	assert.Equal(t, int64(1), laptop.ID)

	got, err := repo.GetByID(ctx, laptop.ID)
	require.NoError(t, err)
	assert.Equal(t, "1500.00", got.Price.StringFixed(2))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Laptop", list[0].Name)
	assert.Equal(t, "Phone", list[1].Name)

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepo_EmailDuplicado(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	repo := postgres.NewUserRepository(pool)

	require.NoError(t, repo.Create(ctx, &entity.User{Name: "Alice", Email: "alice@example.com"}))
	err := repo.Create(ctx, &entity.User{Name: "Otra", Email: "alice@example.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─── Inventario ──────────────────────────────────────────────────────────────

func TestInventoryRepo_AddSetReserve(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	repo := postgres.NewInventoryRepository(pool)

	it, err := repo.Add(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), it.Quantity)
	it, err = repo.Add(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(15), it.Quantity, "Add suma sobre la fila existente")

	require.NoError(t, repo.Set(ctx, 1, 8))
	assert.ErrorIs(t, repo.Set(ctx, 2, 8), domain.ErrNotFound)

	it, err = repo.Reserve(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), it.Quantity)

	_, err = repo.Reserve(ctx, 1, 6)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	_, err = repo.Reserve(ctx, 2, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Quantity)
}

func TestInventoryRepo_AddDesbordeEsEntradaInvalida(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	repo := postgres.NewInventoryRepository(pool)

	_, err := repo.Add(ctx, 1, 10)
	require.NoError(t, err)

	_, err = repo.Add(ctx, 1, math.MaxInt64)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Quantity)
}

func TestInventoryRepo_ReserveConcurrenteNoSobrevende(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	repo := postgres.NewInventoryRepository(pool)
	_, err := repo.Add(ctx, 1, 10)
	require.NoError(t, err)

	var ok, rejected atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Reserve(ctx, 1, 1); err == nil {
				ok.Add(1)
			} else if assert.ErrorIs(t, err, domain.ErrInsufficientStock) {
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(10), ok.Load())
	assert.Equal(t, int64(10), rejected.Load())
	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Quantity)
}

// ─── Órdenes ─────────────────────────────────────────────────────────────────

func TestOrderRepo_AppendYListarMasRecientePrimero(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	repo := postgres.NewOrderRepository(pool)

	first, err := repo.Append(ctx, 1, 1, 2)
	require.NoError(t, err)
	second, err := repo.Append(ctx, 2, 1, 1)
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestBootstrap_SembrarSoloTablaVacia(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	runner := postgres.NewTxRunner(pool)

	seeded, err := postgres.Bootstrap(ctx, runner, postgres.InventorySchema, true)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = postgres.Bootstrap(ctx, runner, postgres.InventorySchema, true)
	require.NoError(t, err)
	assert.False(t, seeded)

	list, err := postgres.NewInventoryRepository(pool).List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(10), list[0].Quantity)
	assert.Equal(t, int64(20), list[1].Quantity)
}
