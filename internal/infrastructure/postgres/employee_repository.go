package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/factory-pro/internal/domain"
	"github.com/tu-usuario/factory-pro/internal/domain/entity"
	"github.com/tu-usuario/factory-pro/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, name, position, email, phone, created_at, updated_at, deleted_at`

// Create persiste un nuevo empleado; el ID lo asigna la base.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	query := `
		INSERT INTO employees (name, position, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		e.Name, e.Position, e.Email, e.Phone, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID. Devuelve (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(id int64) (*entity.Employee, error) {
	return r.getBy("id = $1", id)
}

// GetByEmail obtiene un empleado por email, incluyendo filas con borrado lógico.
func (r *EmployeeRepo) GetByEmail(email string) (*entity.Employee, error) {
	return r.getBy("email = $1", email)
}

// GetByPhone obtiene un empleado por teléfono, incluyendo filas con borrado lógico.
func (r *EmployeeRepo) GetByPhone(phone string) (*entity.Employee, error) {
	return r.getBy("phone = $1", phone)
}

func (r *EmployeeRepo) getBy(where string, arg any) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE ` + where
	var e entity.Employee
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&e.ID, &e.Name, &e.Position, &e.Email, &e.Phone, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// Update actualiza un empleado.
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	query := `
		UPDATE employees SET name = $2, position = $3, email = $4, phone = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Name, e.Position, e.Email, e.Phone, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina físicamente un empleado por ID.
func (r *EmployeeRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

// SoftDelete marca el empleado como borrado sin quitar la fila.
func (r *EmployeeRepo) SoftDelete(id int64, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE employees SET deleted_at = $2, updated_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("soft delete employee: %w", err)
	}
	return nil
}

// Restore limpia la marca de borrado lógico.
func (r *EmployeeRepo) Restore(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE employees SET deleted_at = NULL WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("restore employee: %w", err)
	}
	return nil
}

// List lista empleados paginados. opts.SortColumn viene de la allow-list
// del caso de uso; jamás se interpola texto del request.
func (r *EmployeeRepo) List(opts repository.ListOptions) ([]*entity.Employee, error) {
	dir := "ASC"
	if opts.Desc {
		dir = "DESC"
	}
	query := fmt.Sprintf(`SELECT %s FROM employees ORDER BY %s %s LIMIT $1 OFFSET $2`,
		employeeColumns, opts.SortColumn, dir)
	rows, err := r.q.Query(context.Background(), query, opts.Limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Position, &e.Email, &e.Phone, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Count devuelve el total de filas (incluye borrados lógicos, igual que List).
func (r *EmployeeRepo) Count() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM employees`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return n, nil
}
