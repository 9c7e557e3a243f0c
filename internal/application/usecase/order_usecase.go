package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/factory-pro/internal/application/dto"
	"github.com/tu-usuario/factory-pro/internal/domain"
	"github.com/tu-usuario/factory-pro/internal/domain/entity"
	"github.com/tu-usuario/factory-pro/internal/domain/repository"
)

// OrderTxRunner abre una transacción con los repos que necesita la creación
// de pedidos. Lo implementa postgres.TxRunner; la interfaz evita que la
// aplicación dependa de pgx.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// OrderUseCase casos de uso para pedidos. La creación corre en transacción:
// si algo falla después del lookup, no queda escritura parcial.
type OrderUseCase struct {
	tx   OrderTxRunner
	repo repository.OrderRepository // lecturas y mutaciones simples, fuera de tx
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(tx OrderTxRunner, repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{tx: tx, repo: repo}
}

// Create crea un pedido: valida que cliente y producto existan y congela
// total_price = precio del producto × cantidad. Referencias inexistentes
// son error de validación del request, no un 404 del recurso pedido.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	var created *entity.Order
	err := uc.tx.RunOrder(ctx, func(
		customers repository.CustomerRepository,
		products repository.ProductRepository,
		orders repository.OrderRepository,
	) error {
		customer, err := customers.GetByID(in.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return fmt.Errorf("%w: cliente %d no existe", domain.ErrInvalidInput, in.CustomerID)
		}
		product, err := products.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: producto %d no existe", domain.ErrInvalidInput, in.ProductID)
		}
		now := time.Now()
		order := &entity.Order{
			CustomerID: in.CustomerID,
			ProductID:  in.ProductID,
			Quantity:   in.Quantity,
			TotalPrice: product.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
			CreatedAt:  now,
			UpdatedAt:  now,
			Customer:   customer,
			Product:    product,
		}
		if err := orders.Create(order); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(created), nil
}

// GetByID obtiene un pedido por ID con cliente y producto resueltos.
func (uc *OrderUseCase) GetByID(id int64) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: pedido %d", domain.ErrNotFound, id)
	}
	return toOrderResponse(order), nil
}

// Update actualiza la cantidad. total_price NO se recalcula: quedó
// congelado al precio del momento de la creación.
func (uc *OrderUseCase) Update(id int64, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: pedido %d", domain.ErrNotFound, id)
	}
	if in.Quantity != nil {
		order.Quantity = *in.Quantity
	}
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Delete elimina físicamente un pedido.
func (uc *OrderUseCase) Delete(id int64) error {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("%w: pedido %d", domain.ErrNotFound, id)
	}
	return uc.repo.Delete(id)
}

// List lista pedidos paginados.
func (uc *OrderUseCase) List(p dto.PageRequest) (*dto.OrderListResponse, error) {
	opts, err := p.Normalize(dto.OrderDefaultSort, dto.OrderSortColumns)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(opts)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	resp := &dto.OrderListResponse{Orders: items}
	if p.IncludeMeta {
		total, err := uc.repo.Count()
		if err != nil {
			return nil, err
		}
		page, perPage := p.NormalizedPage()
		resp.ListMeta = dto.NewListMeta(total, page, perPage)
	}
	return resp, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	resp := &dto.OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		ProductID:  o.ProductID,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
		DeletedAt:  o.DeletedAt,
	}
	if o.Customer != nil {
		resp.Customer = &dto.OrderCustomer{ID: o.Customer.ID, Name: o.Customer.Name, Email: o.Customer.Email}
	}
	if o.Product != nil {
		resp.Product = &dto.OrderProduct{ID: o.Product.ID, Name: o.Product.Name, Price: o.Product.Price}
	}
	return resp
}
