package entity

import "time"

// Employee representa un empleado de la planta.
// Email y Phone son únicos en toda la tabla, incluyendo filas con borrado lógico.
type Employee struct {
	ID        int64
	Name      string
	Position  string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // marca de borrado lógico; nil = activo
}
