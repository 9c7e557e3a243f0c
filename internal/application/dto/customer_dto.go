package dto

import "time"

// Campos ordenables permitidos para listados de clientes (campo -> columna).
var CustomerSortColumns = map[string]string{
	"name":  "name",
	"email": "email",
	"phone": "phone",
}

// CustomerDefaultSort orden por defecto de los listados de clientes.
const CustomerDefaultSort = "name"

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email,max=100"`
	Phone string `json:"phone" validate:"required,min=10,max=20,phone"`
}

// UpdateCustomerRequest entrada parcial para actualizar un cliente.
type UpdateCustomerRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email *string `json:"email" validate:"omitempty,email,max=100"`
	Phone *string `json:"phone" validate:"omitempty,min=10,max=20,phone"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// CustomerListResponse listado con metadatos al mismo nivel (nil = sin meta).
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	*ListMeta
}
