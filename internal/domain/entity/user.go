package entity

import "time"

// Roles válidos para User, en orden jerárquico.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// roleRank define la jerarquía total user < admin < super_admin.
var roleRank = map[string]int{
	RoleUser:       1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// IsValidRole indica si el rol pertenece al conjunto cerrado de roles.
func IsValidRole(role string) bool {
	_, ok := roleRank[role]
	return ok
}

// RoleAtLeast indica si role alcanza o supera el rol mínimo requerido.
// Un rol desconocido nunca autoriza.
func RoleAtLeast(role, required string) bool {
	have, ok := roleRank[role]
	if !ok {
		return false
	}
	want, ok := roleRank[required]
	if !ok {
		return false
	}
	return have >= want
}

// User representa una cuenta del sistema.
// PasswordHash guarda solo el hash bcrypt; el plano jamás se persiste ni serializa.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string // user, admin o super_admin
	IsActive     bool   // espejo del borrado lógico
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// HasPermission indica si el usuario alcanza el rol mínimo requerido.
func (u *User) HasPermission(required string) bool {
	return RoleAtLeast(u.Role, required)
}
