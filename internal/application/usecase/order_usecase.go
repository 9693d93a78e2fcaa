package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/domain"
	"github.com/jhoicas/factory-api/internal/domain/entity"
	"github.com/jhoicas/factory-api/internal/domain/repository"
)

// OrderUseCase casos de uso CRUD para pedidos. El total de un pedido se
// calcula con el precio del producto vigente al crear y queda congelado.
type OrderUseCase struct {
	repo      repository.OrderRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	repo repository.OrderRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
) *OrderUseCase {
	return &OrderUseCase{repo: repo, customers: customers, products: products}
}

// Create crea un pedido. Valida que el cliente y el producto existan y
// calcula total_price = price × quantity con aritmética decimal exacta.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("customer_id %d no existe: %w", in.CustomerID, domain.ErrInvalidInput)
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product_id %d no existe: %w", in.ProductID, domain.ErrInvalidInput)
	}

	o := &entity.Order{
		CustomerID: in.CustomerID,
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		TotalPrice: product.Price.Mul(decimal.NewFromInt(in.Quantity)),
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(o); err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// GetByID obtiene un pedido por ID; (nil, nil) si no existe.
func (uc *OrderUseCase) GetByID(id int64) (*dto.OrderResponse, error) {
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, nil
	}
	return toOrderResponse(o), nil
}

// List lista pedidos paginados.
func (uc *OrderUseCase) List(q dto.ListQuery) (*dto.OrderListResponse, error) {
	list, err := uc.repo.List(q)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	resp := &dto.OrderListResponse{Orders: items}
	if q.IncludeMeta {
		total, err := uc.repo.Count()
		if err != nil {
			return nil, err
		}
		resp.ListMeta = dto.NewListMeta(total, q)
	}
	return resp, nil
}

// Update actualiza un pedido. Solo quantity es mutable; el total se re-deriva
// del precio unitario congelado del pedido, no del precio actual del
// producto, para preservar el congelamiento.
func (uc *OrderUseCase) Update(id int64, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, nil
	}
	if in.Quantity != nil {
		unit := o.UnitPrice()
		o.Quantity = *in.Quantity
		o.TotalPrice = unit.Mul(decimal.NewFromInt(*in.Quantity))
	}
	if err := uc.repo.Update(o); err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// Delete elimina un pedido; false si el id no existe.
func (uc *OrderUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		ProductID:  o.ProductID,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
	}
}
