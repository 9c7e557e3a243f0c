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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, price, stock_quantity, created_at, updated_at, deleted_at`

// Create persiste un nuevo producto; el ID lo asigna la base.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (name, price, stock_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.Name, p.Price, p.StockQuantity, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.StockQuantity, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, price = $3, stock_quantity = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Price, p.StockQuantity, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina físicamente un producto por ID.
func (r *ProductRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// SoftDelete marca el producto como borrado sin quitar la fila.
func (r *ProductRepo) SoftDelete(id int64, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET deleted_at = $2, updated_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	return nil
}

// Restore limpia la marca de borrado lógico.
func (r *ProductRepo) Restore(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET deleted_at = NULL WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("restore product: %w", err)
	}
	return nil
}

// List lista productos paginados. opts.SortColumn sale de la allow-list del caso de uso.
func (r *ProductRepo) List(opts repository.ListOptions) ([]*entity.Product, error) {
	dir := "ASC"
	if opts.Desc {
		dir = "DESC"
	}
	query := fmt.Sprintf(`SELECT %s FROM products ORDER BY %s %s LIMIT $1 OFFSET $2`,
		productColumns, opts.SortColumn, dir)
	rows, err := r.q.Query(context.Background(), query, opts.Limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.StockQuantity, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Count devuelve el total de filas de productos.
func (r *ProductRepo) Count() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
