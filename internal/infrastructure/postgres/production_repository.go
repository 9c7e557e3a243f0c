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

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implementación de ProductionRepository (usable con pool o tx).
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

const productionSelect = `
	SELECT pr.id, pr.product_id, pr.quantity_produced, pr.date_produced,
	       pr.created_at, pr.updated_at, pr.deleted_at, p.name
	FROM production pr
	JOIN products p ON p.id = pr.product_id`

// Create persiste un nuevo registro de producción; el ID lo asigna la base.
func (r *ProductionRepo) Create(pr *entity.Production) error {
	query := `
		INSERT INTO production (product_id, quantity_produced, date_produced, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		pr.ProductID, pr.QuantityProduced, pr.DateProduced, pr.CreatedAt, pr.UpdatedAt,
	).Scan(&pr.ID)
	if err != nil {
		return fmt.Errorf("insert production: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de producción por ID con el nombre del
// producto resuelto. Devuelve (nil, nil) si no existe.
func (r *ProductionRepo) GetByID(id int64) (*entity.Production, error) {
	var pr entity.Production
	err := r.q.QueryRow(context.Background(), productionSelect+` WHERE pr.id = $1`, id).Scan(
		&pr.ID, &pr.ProductID, &pr.QuantityProduced, &pr.DateProduced,
		&pr.CreatedAt, &pr.UpdatedAt, &pr.DeletedAt, &pr.ProductName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production: %w", err)
	}
	return &pr, nil
}

// Update actualiza cantidad y fecha de un registro de producción.
func (r *ProductionRepo) Update(pr *entity.Production) error {
	query := `
		UPDATE production SET quantity_produced = $2, date_produced = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		pr.ID, pr.QuantityProduced, pr.DateProduced, pr.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update production: %w", err)
	}
	return nil
}

// Delete elimina físicamente un registro de producción por ID.
func (r *ProductionRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM production WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete production: %w", err)
	}
	return nil
}

// SoftDelete marca el registro como borrado sin quitar la fila.
func (r *ProductionRepo) SoftDelete(id int64, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE production SET deleted_at = $2, updated_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("soft delete production: %w", err)
	}
	return nil
}

// Restore limpia la marca de borrado lógico.
func (r *ProductionRepo) Restore(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE production SET deleted_at = NULL WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("restore production: %w", err)
	}
	return nil
}

// List lista registros de producción paginados con nombre de producto.
// opts.SortColumn sale de la allow-list del caso de uso.
func (r *ProductionRepo) List(opts repository.ListOptions) ([]*entity.Production, error) {
	dir := "ASC"
	if opts.Desc {
		dir = "DESC"
	}
	query := fmt.Sprintf(`%s ORDER BY pr.%s %s LIMIT $1 OFFSET $2`, productionSelect, opts.SortColumn, dir)
	rows, err := r.q.Query(context.Background(), query, opts.Limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("list production: %w", err)
	}
	defer rows.Close()
	var list []*entity.Production
	for rows.Next() {
		var pr entity.Production
		if err := rows.Scan(
			&pr.ID, &pr.ProductID, &pr.QuantityProduced, &pr.DateProduced,
			&pr.CreatedAt, &pr.UpdatedAt, &pr.DeletedAt, &pr.ProductName,
		); err != nil {
			return nil, fmt.Errorf("scan production: %w", err)
		}
		list = append(list, &pr)
	}
	return list, rows.Err()
}

// Count devuelve el total de registros de producción.
func (r *ProductionRepo) Count() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM production`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count production: %w", err)
	}
	return n, nil
}
