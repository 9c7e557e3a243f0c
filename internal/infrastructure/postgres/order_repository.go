package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/factory-pro/internal/domain/entity"
	"github.com/tu-usuario/factory-pro/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
// Las lecturas resuelven cliente y producto vía join, como exige la
// serialización de pedidos (nombre y email del cliente, nombre y precio
// del producto).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderSelect = `
	SELECT o.id, o.customer_id, o.product_id, o.quantity, o.total_price,
	       o.created_at, o.updated_at, o.deleted_at,
	       c.name, c.email, p.name, p.price
	FROM orders o
	JOIN customers c ON c.id = o.customer_id
	JOIN products  p ON p.id = o.product_id`

// Create persiste un nuevo pedido; TotalPrice ya viene calculado y congelado.
func (r *OrderRepo) Create(o *entity.Order) error {
	query := `
		INSERT INTO orders (customer_id, product_id, quantity, total_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		o.CustomerID, o.ProductID, o.Quantity, o.TotalPrice, o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID con cliente y producto resueltos.
// Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	var o entity.Order
	var cust entity.Customer
	var prod entity.Product
	err := r.q.QueryRow(context.Background(), orderSelect+` WHERE o.id = $1`, id).Scan(
		&o.ID, &o.CustomerID, &o.ProductID, &o.Quantity, &o.TotalPrice,
		&o.CreatedAt, &o.UpdatedAt, &o.DeletedAt,
		&cust.Name, &cust.Email, &prod.Name, &prod.Price,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	cust.ID, prod.ID = o.CustomerID, o.ProductID
	o.Customer, o.Product = &cust, &prod
	return &o, nil
}

// Update actualiza la cantidad de un pedido. TotalPrice no se toca: quedó
// congelado al precio del momento de la creación.
func (r *OrderRepo) Update(o *entity.Order) error {
	query := `UPDATE orders SET quantity = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, o.ID, o.Quantity, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete elimina físicamente un pedido por ID.
func (r *OrderRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// SoftDelete marca el pedido como borrado sin quitar la fila.
func (r *OrderRepo) SoftDelete(id int64, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET deleted_at = $2, updated_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("soft delete order: %w", err)
	}
	return nil
}

// Restore limpia la marca de borrado lógico.
func (r *OrderRepo) Restore(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET deleted_at = NULL WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("restore order: %w", err)
	}
	return nil
}

// List lista pedidos paginados con cliente y producto resueltos.
// opts.SortColumn sale de la allow-list del caso de uso.
func (r *OrderRepo) List(opts repository.ListOptions) ([]*entity.Order, error) {
	dir := "ASC"
	if opts.Desc {
		dir = "DESC"
	}
	query := fmt.Sprintf(`%s ORDER BY o.%s %s LIMIT $1 OFFSET $2`, orderSelect, opts.SortColumn, dir)
	rows, err := r.q.Query(context.Background(), query, opts.Limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		var cust entity.Customer
		var prod entity.Product
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.ProductID, &o.Quantity, &o.TotalPrice,
			&o.CreatedAt, &o.UpdatedAt, &o.DeletedAt,
			&cust.Name, &cust.Email, &prod.Name, &prod.Price,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		cust.ID, prod.ID = o.CustomerID, o.ProductID
		o.Customer, o.Product = &cust, &prod
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Count devuelve el total de filas de pedidos.
func (r *OrderRepo) Count() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}
