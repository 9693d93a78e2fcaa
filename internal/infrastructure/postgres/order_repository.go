package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/domain"
	"github.com/jhoicas/factory-api/internal/domain/entity"
	"github.com/jhoicas/factory-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un nuevo pedido con el total ya calculado y llena el ID generado.
func (r *OrderRepo) Create(o *entity.Order) error {
	query := `
		INSERT INTO orders (customer_id, product_id, quantity, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		o.CustomerID, o.ProductID, o.Quantity, o.TotalPrice, o.CreatedAt,
	).Scan(&o.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	query := `
		SELECT id, customer_id, product_id, quantity, total_price, created_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CustomerID, &o.ProductID, &o.Quantity, &o.TotalPrice, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// List lista pedidos paginados con orden estable (desempate por id).
func (r *OrderRepo) List(q dto.ListQuery) ([]*entity.Order, error) {
	query := fmt.Sprintf(`
		SELECT id, customer_id, product_id, quantity, total_price, created_at
		FROM orders ORDER BY %s %s, id ASC LIMIT $1 OFFSET $2`,
		q.SortBy, sqlDirection(q.SortOrder))
	rows, err := r.q.Query(context.Background(), query, q.PerPage, q.Offset())
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.ProductID, &o.Quantity, &o.TotalPrice, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Count total de pedidos.
func (r *OrderRepo) Count() (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM orders`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return total, nil
}

// Update actualiza cantidad y total de un pedido existente.
func (r *OrderRepo) Update(o *entity.Order) error {
	query := `UPDATE orders SET quantity = $2, total_price = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, o.ID, o.Quantity, o.TotalPrice)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete elimina un pedido por ID. Devuelve false si no existía.
func (r *OrderRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
