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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, name, email, phone, created_at, updated_at, deleted_at`

// Create persiste un nuevo cliente; el ID lo asigna la base.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `
		INSERT INTO customers (name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		c.Name, c.Email, c.Phone, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	return r.getBy("id = $1", id)
}

// GetByEmail obtiene un cliente por email, incluyendo filas con borrado lógico.
func (r *CustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	return r.getBy("email = $1", email)
}

// GetByPhone obtiene un cliente por teléfono, incluyendo filas con borrado lógico.
func (r *CustomerRepo) GetByPhone(phone string) (*entity.Customer, error) {
	return r.getBy("phone = $1", phone)
}

func (r *CustomerRepo) getBy(where string, arg any) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE ` + where
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(c *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, email = $3, phone = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Email, c.Phone, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina físicamente un cliente por ID.
func (r *CustomerRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// SoftDelete marca el cliente como borrado sin quitar la fila.
func (r *CustomerRepo) SoftDelete(id int64, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE customers SET deleted_at = $2, updated_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("soft delete customer: %w", err)
	}
	return nil
}

// Restore limpia la marca de borrado lógico.
func (r *CustomerRepo) Restore(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE customers SET deleted_at = NULL WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("restore customer: %w", err)
	}
	return nil
}

// List lista clientes paginados. opts.SortColumn sale de la allow-list del caso de uso.
func (r *CustomerRepo) List(opts repository.ListOptions) ([]*entity.Customer, error) {
	dir := "ASC"
	if opts.Desc {
		dir = "DESC"
	}
	query := fmt.Sprintf(`SELECT %s FROM customers ORDER BY %s %s LIMIT $1 OFFSET $2`,
		customerColumns, opts.SortColumn, dir)
	rows, err := r.q.Query(context.Background(), query, opts.Limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Count devuelve el total de filas de clientes.
func (r *CustomerRepo) Count() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}
