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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, username, password_hash, role, is_active, created_at, updated_at, deleted_at`

// Create persiste un nuevo usuario; el ID lo asigna la base.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO users (username, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		u.Username, u.PasswordHash, u.Role, u.IsActive, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	return r.getBy("id = $1", id)
}

// GetByUsername obtiene un usuario por username, incluyendo inactivos.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.getBy("username = $1", username)
}

func (r *UserRepo) getBy(where string, arg any) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update actualiza hash de contraseña y rol de un usuario.
func (r *UserRepo) Update(u *entity.User) error {
	query := `
		UPDATE users SET username = $2, password_hash = $3, role = $4, is_active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Username, u.PasswordHash, u.Role, u.IsActive, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina físicamente un usuario por ID.
func (r *UserRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// SoftDelete marca el usuario como inactivo sin quitar la fila.
func (r *UserRepo) SoftDelete(id int64, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET is_active = FALSE, deleted_at = $2, updated_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("soft delete user: %w", err)
	}
	return nil
}

// Restore reactiva un usuario con borrado lógico.
func (r *UserRepo) Restore(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET is_active = TRUE, deleted_at = NULL WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("restore user: %w", err)
	}
	return nil
}

// List lista usuarios paginados. opts.SortColumn sale de la allow-list del caso de uso.
func (r *UserRepo) List(opts repository.ListOptions) ([]*entity.User, error) {
	dir := "ASC"
	if opts.Desc {
		dir = "DESC"
	}
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY %s %s LIMIT $1 OFFSET $2`,
		userColumns, opts.SortColumn, dir)
	rows, err := r.q.Query(context.Background(), query, opts.Limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Count devuelve el total de filas de usuarios.
func (r *UserRepo) Count() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
