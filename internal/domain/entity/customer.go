package entity

import "time"

// Customer representa un cliente que coloca pedidos.
// Email y Phone son únicos en toda la tabla, incluyendo filas con borrado lógico.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
