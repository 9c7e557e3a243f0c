package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
// Es el respaldo autoritativo de los pre-chequeos de unicidad: dos creates
// concurrentes con el mismo email pueden pasar ambos el pre-chequeo, pero
// solo uno sobrevive al constraint.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
