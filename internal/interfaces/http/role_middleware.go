package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/factory-pro/internal/application/dto"
	"github.com/tu-usuario/factory-pro/internal/domain/entity"
)

// RequireRole admite la petición solo si el rol del token alcanza el rol
// mínimo. La jerarquía es user < admin < super_admin: un super_admin pasa
// por cualquier ruta de admin. Corre después de AuthMiddleware.
func RequireRole(minRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if !entity.RoleAtLeast(role, minRole) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "permisos insuficientes"})
		}
		return c.Next()
	}
}
