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

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implementación del puerto ProductionRepository sobre PostgreSQL (usable con pool o tx).
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador de persistencia para registros de producción. Pasar pool o tx (Querier).
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

// Create persiste un nuevo registro de producción y llena el ID generado.
// employee_id es opcional (NULL si no se asocia a un empleado).
func (r *ProductionRepo) Create(p *entity.Production) error {
	query := `
		INSERT INTO productions (product_id, employee_id, quantity_produced, date_produced)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.ProductID, p.EmployeeID, p.QuantityProduced, p.DateProduced,
	).Scan(&p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert production: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de producción por ID.
func (r *ProductionRepo) GetByID(id int64) (*entity.Production, error) {
	query := `
		SELECT id, product_id, employee_id, quantity_produced, date_produced
		FROM productions WHERE id = $1`
	var p entity.Production
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ProductID, &p.EmployeeID, &p.QuantityProduced, &p.DateProduced,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production: %w", err)
	}
	return &p, nil
}

// List lista registros de producción paginados con orden estable (desempate por id).
func (r *ProductionRepo) List(q dto.ListQuery) ([]*entity.Production, error) {
	query := fmt.Sprintf(`
		SELECT id, product_id, employee_id, quantity_produced, date_produced
		FROM productions ORDER BY %s %s, id ASC LIMIT $1 OFFSET $2`,
		q.SortBy, sqlDirection(q.SortOrder))
	rows, err := r.q.Query(context.Background(), query, q.PerPage, q.Offset())
	if err != nil {
		return nil, fmt.Errorf("list productions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Production
	for rows.Next() {
		var p entity.Production
		if err := rows.Scan(&p.ID, &p.ProductID, &p.EmployeeID, &p.QuantityProduced, &p.DateProduced); err != nil {
			return nil, fmt.Errorf("scan production: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Count total de registros de producción.
func (r *ProductionRepo) Count() (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM productions`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count productions: %w", err)
	}
	return total, nil
}

// Update actualiza un registro de producción existente.
func (r *ProductionRepo) Update(p *entity.Production) error {
	query := `
		UPDATE productions SET product_id = $2, employee_id = $3, quantity_produced = $4, date_produced = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ProductID, p.EmployeeID, p.QuantityProduced, p.DateProduced,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("update production: %w", err)
	}
	return nil
}

// Delete elimina un registro de producción por ID. Devuelve false si no existía.
func (r *ProductionRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM productions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete production: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
