package dto

import "time"

// Campos ordenables permitidos para listados de empleados (campo -> columna).
var EmployeeSortColumns = map[string]string{
	"name":     "name",
	"position": "position",
	"email":    "email",
	"phone":    "phone",
}

// EmployeeDefaultSort orden por defecto de los listados de empleados.
const EmployeeDefaultSort = "name"

// CreateEmployeeRequest entrada para crear un empleado.
type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Position string `json:"position" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Phone    string `json:"phone" validate:"required,min=10,max=20,phone"`
}

// UpdateEmployeeRequest entrada parcial para actualizar un empleado.
type UpdateEmployeeRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Position *string `json:"position" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,min=10,max=20,phone"`
}

// EmployeeResponse salida de un empleado. deleted_at se omite cuando es null.
type EmployeeResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Position  string     `json:"position"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// EmployeeListResponse listado con metadatos al mismo nivel (nil = sin meta).
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	*ListMeta
}
