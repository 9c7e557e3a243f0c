package dto

import "time"

// Campos ordenables permitidos para listados de usuarios (campo -> columna).
var UserSortColumns = map[string]string{
	"username":   "username",
	"role":       "role",
	"created_at": "created_at",
}

// UserDefaultSort orden por defecto de los listados de usuarios.
const UserDefaultSort = "username"

// RegisterUserRequest entrada para registrar un usuario (solo super_admin).
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=user admin super_admin"`
}

// UpdateUserRequest entrada parcial para actualizar un usuario.
type UpdateUserRequest struct {
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role" validate:"omitempty,oneof=user admin super_admin"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse respuesta del login.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse salida de un usuario. La contraseña (ni su hash) jamás
// aparece aquí, bajo ninguna circunstancia.
type UserResponse struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// UserListResponse listado con metadatos al mismo nivel (nil = sin meta).
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	*ListMeta
}
