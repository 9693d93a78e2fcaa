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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y llena el ID generado.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (name, price, created_at)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, p.Name, p.Price, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT id, name, price, created_at FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(&p.ID, &p.Name, &p.Price, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista productos paginados con orden estable (desempate por id).
func (r *ProductRepo) List(q dto.ListQuery) ([]*entity.Product, error) {
	query := fmt.Sprintf(`
		SELECT id, name, price, created_at
		FROM products ORDER BY %s %s, id ASC LIMIT $1 OFFSET $2`,
		q.SortBy, sqlDirection(q.SortOrder))
	rows, err := r.q.Query(context.Background(), query, q.PerPage, q.Offset())
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Count total de productos.
func (r *ProductRepo) Count() (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM products`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `UPDATE products SET name = $2, price = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Name, p.Price)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID. Falla con ErrForeignKey si está
// referenciado por pedidos o producciones (ON DELETE RESTRICT).
func (r *ProductRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrForeignKey
		}
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
