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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un nuevo empleado y llena el ID generado.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	query := `
		INSERT INTO employees (name, position, email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		e.Name, e.Position, e.Email, e.Phone, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(id int64) (*entity.Employee, error) {
	query := `
		SELECT id, name, position, email, phone, created_at
		FROM employees WHERE id = $1`
	var e entity.Employee
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Name, &e.Position, &e.Email, &e.Phone, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// List lista empleados paginados. El ORDER BY usa el campo ya validado contra
// la whitelist del recurso; id ASC como desempate para orden estable.
func (r *EmployeeRepo) List(q dto.ListQuery) ([]*entity.Employee, error) {
	query := fmt.Sprintf(`
		SELECT id, name, position, email, phone, created_at
		FROM employees ORDER BY %s %s, id ASC LIMIT $1 OFFSET $2`,
		q.SortBy, sqlDirection(q.SortOrder))
	rows, err := r.q.Query(context.Background(), query, q.PerPage, q.Offset())
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Position, &e.Email, &e.Phone, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Count total de empleados (para los metadatos de paginación).
func (r *EmployeeRepo) Count() (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM employees`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return total, nil
}

// Update actualiza un empleado existente.
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	query := `
		UPDATE employees SET name = $2, position = $3, email = $4, phone = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Name, e.Position, e.Email, e.Phone,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID. Devuelve false si no existía.
func (r *EmployeeRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrForeignKey
		}
		return false, fmt.Errorf("delete employee: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
