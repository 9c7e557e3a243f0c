package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/factory-pro/internal/application/dto"
	"github.com/tu-usuario/factory-pro/internal/domain"
)

// writeError traduce los errores de dominio al status HTTP y al cuerpo
// {"error": "..."} que comparten todos los handlers.
func writeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrDuplicate):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error()})
}

// parseIDParam lee el parámetro :id de la ruta. Un ID no numérico no
// corresponde a ningún recurso, así que responde 404.
func parseIDParam(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: id %q", domain.ErrNotFound, raw)
	}
	return id, nil
}

// parsePageRequest lee los parámetros de paginación del query string.
// include_meta por defecto es true: la página siempre trae totales salvo
// que el cliente pida lo contrario.
func parsePageRequest(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{
		Page:        c.QueryInt("page", 1),
		PerPage:     c.QueryInt("per_page", 10),
		SortBy:      c.Query("sort_by"),
		SortOrder:   c.Query("sort_order"),
		IncludeMeta: c.QueryBool("include_meta", true),
	}
}
