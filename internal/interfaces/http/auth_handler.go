package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/factory-pro/internal/application/auth"
	"github.com/tu-usuario/factory-pro/internal/application/dto"
	"github.com/tu-usuario/factory-pro/internal/application/usecase"
)

// AuthHandler maneja registro, login y administración de cuentas. El
// registro y la gestión por ID son de super_admin; el listado es de admin;
// el login es público.
type AuthHandler struct {
	authUC *auth.AuthUseCase
	userUC *usecase.UserUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(authUC *auth.AuthUseCase, userUC *usecase.UserUseCase) *AuthHandler {
	return &AuthHandler{authUC: authUC, userUC: userUC}
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	user, err := h.authUC.RegisterUser(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	token, err := h.authUC.Login(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(token)
}

// List GET /auth
func (h *AuthHandler) List(c *fiber.Ctx) error {
	list, err := h.userUC.List(parsePageRequest(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /auth/:id
func (h *AuthHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, err)
	}
	user, err := h.userUC.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}

// Update PUT /auth/:id
func (h *AuthHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	user, err := h.userUC.Update(id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}

// Delete DELETE /auth/:id
func (h *AuthHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.userUC.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "User deleted successfully"})
}
