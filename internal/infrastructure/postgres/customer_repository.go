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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente y llena el ID generado.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `
		INSERT INTO customers (name, email, phone, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, c.Name, c.Email, c.Phone, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	query := `SELECT id, name, email, phone, created_at FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List lista clientes paginados con orden estable (desempate por id).
func (r *CustomerRepo) List(q dto.ListQuery) ([]*entity.Customer, error) {
	query := fmt.Sprintf(`
		SELECT id, name, email, phone, created_at
		FROM customers ORDER BY %s %s, id ASC LIMIT $1 OFFSET $2`,
		q.SortBy, sqlDirection(q.SortOrder))
	rows, err := r.q.Query(context.Background(), query, q.PerPage, q.Offset())
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Count total de clientes.
func (r *CustomerRepo) Count() (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM customers`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return total, nil
}

// Update actualiza un cliente existente.
func (r *CustomerRepo) Update(c *entity.Customer) error {
	query := `UPDATE customers SET name = $2, email = $3, phone = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Name, c.Email, c.Phone)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID. Falla con ErrForeignKey si tiene pedidos
// (ON DELETE RESTRICT).
func (r *CustomerRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrForeignKey
		}
		return false, fmt.Errorf("delete customer: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
