package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/application/usecase"
	"github.com/jhoicas/factory-api/internal/domain"
	"github.com/jhoicas/factory-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[int64]*entity.Order
	nextID int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[int64]*entity.Order), nextID: 1}
}

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	o.ID = f.nextID
	f.nextID++
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(id int64) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) List(q dto.ListQuery) ([]*entity.Order, error) {
	var list []*entity.Order
	for _, o := range f.orders {
		cp := *o
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeOrderRepo) Count() (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) Update(o *entity.Order) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) Delete(id int64) (bool, error) {
	if _, ok := f.orders[id]; !ok {
		return false, nil
	}
	delete(f.orders, id)
	return true, nil
}

type fakeCustomerRepo struct {
	customers map[int64]*entity.Customer
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error { return nil }
func (f *fakeCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	return f.customers[id], nil
}
func (f *fakeCustomerRepo) List(q dto.ListQuery) ([]*entity.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) Count() (int64, error)                            { return 0, nil }
func (f *fakeCustomerRepo) Update(c *entity.Customer) error                  { return nil }
func (f *fakeCustomerRepo) Delete(id int64) (bool, error)                    { return false, nil }

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) List(q dto.ListQuery) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Count() (int64, error)                           { return 0, nil }
func (f *fakeProductRepo) Update(p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}
func (f *fakeProductRepo) Delete(id int64) (bool, error) { return false, nil }

func buildOrderUC() (*usecase.OrderUseCase, *fakeOrderRepo, *fakeProductRepo) {
	orders := newFakeOrderRepo()
	customers := &fakeCustomerRepo{customers: map[int64]*entity.Customer{
		1: {ID: 1, Name: "ACME SA", Email: "compras@acme.com", Phone: "555-0001", CreatedAt: time.Now()},
	}}
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		7: {ID: 7, Name: "Tornillo M8", Price: decimal.RequireFromString("9.99"), CreatedAt: time.Now()},
	}}
	return usecase.NewOrderUseCase(orders, customers, products), orders, products
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderCreate_CalculaTotalConPrecioVigente(t *testing.T) {
	uc, _, _ := buildOrderUC()

	out, err := uc.Create(dto.CreateOrderRequest{CustomerID: 1, ProductID: 7, Quantity: 3})
	require.NoError(t, err)

	// 9.99 × 3 = 29.97 exacto, sin deriva de float
	assert.True(t, decimal.RequireFromString("29.97").Equal(out.TotalPrice),
		"total esperado 29.97, obtenido %s", out.TotalPrice)
}

func TestOrderCreate_ClienteInexistente(t *testing.T) {
	uc, _, _ := buildOrderUC()

	_, err := uc.Create(dto.CreateOrderRequest{CustomerID: 99, ProductID: 7, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderCreate_ProductoInexistente(t *testing.T) {
	uc, _, _ := buildOrderUC()

	_, err := uc.Create(dto.CreateOrderRequest{CustomerID: 1, ProductID: 99, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUpdate_RederivaDelPrecioCongelado(t *testing.T) {
	uc, _, products := buildOrderUC()

	created, err := uc.Create(dto.CreateOrderRequest{CustomerID: 1, ProductID: 7, Quantity: 3})
	require.NoError(t, err)

	// El precio del producto sube después de crear el pedido
	products.products[7].Price = decimal.RequireFromString("50.00")

	qty := int64(5)
	updated, err := uc.Update(created.ID, dto.UpdateOrderRequest{Quantity: &qty})
	require.NoError(t, err)

	// 9.99 (precio unitario congelado) × 5 = 49.95, no 250.00
	assert.True(t, decimal.RequireFromString("49.95").Equal(updated.TotalPrice),
		"el total debe derivarse del precio unitario original, obtenido %s", updated.TotalPrice)
}

func TestOrderUpdate_PedidoInexistente(t *testing.T) {
	uc, _, _ := buildOrderUC()

	qty := int64(2)
	out, err := uc.Update(123, dto.UpdateOrderRequest{Quantity: &qty})
	require.NoError(t, err)
	assert.Nil(t, out, "pedido inexistente devuelve nil, no error")
}

func TestOrderDelete(t *testing.T) {
	uc, _, _ := buildOrderUC()

	created, err := uc.Create(dto.CreateOrderRequest{CustomerID: 1, ProductID: 7, Quantity: 1})
	require.NoError(t, err)

	ok, err := uc.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, ok, "borrar dos veces devuelve false la segunda")
}
