package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/ecomicro/internal/application/dto"
	"github.com/jhoicas/ecomicro/internal/domain"
	"github.com/jhoicas/ecomicro/internal/domain/entity"
	"github.com/jhoicas/ecomicro/internal/domain/repository"
	"github.com/jhoicas/ecomicro/pkg/logger"
	"github.com/jhoicas/ecomicro/pkg/requestid"
)

// CreateOrderUseCase valida las referencias de una orden, descuenta el stock y la persiste.
//
//	reserve-first:  usuario → producto → Reserve (atómico) → Append
//	check-then-set: usuario → producto → GetStock → stock >= cantidad → Append → SetQuantity(leído - cantidad)
//
// Ninguna llamada se reintenta y no hay compensación: si la segunda escritura falla la primera queda hecha.
type CreateOrderUseCase struct {
	users     UserLookup
	products  ProductLookup
	inventory InventoryGateway
	orders    repository.OrderRepository
	strategy  Strategy
	log       *logger.Logger
}

// NewCreateOrderUseCase construye el caso de uso con sus colaboradores.
func NewCreateOrderUseCase(
	users UserLookup,
	products ProductLookup,
	inventory InventoryGateway,
	orders repository.OrderRepository,
	strategy Strategy,
	log *logger.Logger,
) *CreateOrderUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CreateOrderUseCase{
		users:     users,
		products:  products,
		inventory: inventory,
		orders:    orders,
		strategy:  strategy,
		log:       log,
	}
}

// Create ejecuta el flujo. Errores:
//   - domain.ErrInvalidInput: algún campo no es positivo.
//   - *domain.ReferenceNotFoundError: usuario, producto o inventario inexistente.
//   - domain.ErrInsufficientStock: la cantidad supera el stock.
//   - cualquier otro: fallo de un colaborador o del almacenamiento local.
func (uc *CreateOrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.UserID <= 0 || in.ProductID <= 0 || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	l := uc.log.With().
		Str("request_id", requestid.FromContext(ctx)).
		Int64("user_id", in.UserID).
		Int64("product_id", in.ProductID).
		Int64("quantity", in.Quantity).
		Str("strategy", string(uc.strategy)).
		Logger()

	if _, err := uc.users.GetUser(ctx, in.UserID); err != nil {
		return nil, lookupError(&l, err, domain.EntityUser)
	}
	l.Debug().Msg("usuario validado")

	if _, err := uc.products.GetProduct(ctx, in.ProductID); err != nil {
		return nil, lookupError(&l, err, domain.EntityProduct)
	}
	l.Debug().Msg("producto validado")

	var (
		order *entity.Order
		err   error
	)
	if uc.strategy == StrategyCheckThenSet {
		order, err = uc.checkThenSet(ctx, &l, in)
	} else {
		order, err = uc.reserveFirst(ctx, &l, in)
	}
	if err != nil {
		return nil, err
	}

	l.Info().Int64("order_id", order.ID).Msg("orden creada")
	out := dto.NewOrderResponse(order)
	return &out, nil
}

func (uc *CreateOrderUseCase) reserveFirst(ctx context.Context, l *zerolog.Logger, in dto.CreateOrderRequest) (*entity.Order, error) {
	item, err := uc.inventory.Reserve(ctx, in.ProductID, in.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			l.Info().Msg("orden rechazada: stock insuficiente")
			return nil, domain.ErrInsufficientStock
		}
		return nil, lookupError(l, err, domain.EntityInventory)
	}
	l.Debug().Int64("stock_restante", item.Quantity).Msg("stock reservado")

	order, err := uc.orders.Append(ctx, in.UserID, in.ProductID, in.Quantity)
	if err != nil {
		// El stock ya se descontó; queda sub-contado hasta un ajuste manual.
		l.Error().Err(err).Msg("stock reservado pero la orden no se guardó")
		return nil, fmt.Errorf("guardar orden: %w", err)
	}
	return order, nil
}

func (uc *CreateOrderUseCase) checkThenSet(ctx context.Context, l *zerolog.Logger, in dto.CreateOrderRequest) (*entity.Order, error) {
	stock, err := uc.inventory.GetStock(ctx, in.ProductID)
	if err != nil {
		return nil, lookupError(l, err, domain.EntityInventory)
	}
	if !stock.CanFulfil(in.Quantity) {
		l.Info().Int64("stock", stock.Quantity).Msg("orden rechazada: stock insuficiente")
		return nil, domain.ErrInsufficientStock
	}
	l.Debug().Int64("stock", stock.Quantity).Msg("stock verificado")

	order, err := uc.orders.Append(ctx, in.UserID, in.ProductID, in.Quantity)
	if err != nil {
		return nil, fmt.Errorf("guardar orden: %w", err)
	}

	// Valor leído arriba, sin releer.
	if err := uc.inventory.SetQuantity(ctx, in.ProductID, stock.Quantity-in.Quantity); err != nil {
		l.Error().Err(err).Int64("order_id", order.ID).Msg("orden guardada pero el inventario no se actualizó")
		return nil, fmt.Errorf("actualizar inventario: %w", err)
	}
	return order, nil
}

// lookupError traduce el fallo de una consulta: solo not found se convierte en ReferenceNotFound.
func lookupError(l *zerolog.Logger, err error, entityName string) error {
	if errors.Is(err, domain.ErrNotFound) {
		l.Info().Str("entity", entityName).Msg("orden rechazada: referencia no encontrada")
		return domain.NewReferenceNotFound(entityName)
	}
	l.Warn().Err(err).Str("entity", entityName).Msg("fallo consultando colaborador")
	return fmt.Errorf("consultar %s: %w", entityName, err)
}
