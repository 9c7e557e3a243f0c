package dto

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/factory-pro/internal/domain"
	"github.com/tu-usuario/factory-pro/internal/domain/repository"
)

// ErrorResponse cuerpo de error HTTP: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse respuesta de éxito sin entidad (deletes).
type MessageResponse struct {
	Message string `json:"message"`
}

// PageRequest parámetros de paginación y orden de los listados, tal como
// llegan del query string.
type PageRequest struct {
	Page        int    `query:"page"`
	PerPage     int    `query:"per_page"`
	SortBy      string `query:"sort_by"`
	SortOrder   string `query:"sort_order"`
	IncludeMeta bool   `query:"include_meta"`
}

// Normalize valida los parámetros contra la allow-list de la entidad y los
// traduce a opciones de listado. page se fija a mínimo 1 y per_page se acota
// al rango [1, 100]: un per_page=0 explícito pagina de a 1, no vuelve al
// valor por defecto (ese lo pone el handler al leer el query string).
// sort_by fuera de la lista falla antes de tocar la base. sort_order
// distinto de "desc" (sin distinguir mayúsculas) ordena ascendente sin
// rechazar, fiel al comportamiento original.
func (p PageRequest) Normalize(defaultSort string, sortColumns map[string]string) (repository.ListOptions, error) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	perPage := p.PerPage
	if perPage < 1 {
		perPage = 1
	}
	if perPage > 100 {
		perPage = 100
	}

	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = defaultSort
	}
	column, ok := sortColumns[sortBy]
	if !ok {
		return repository.ListOptions{}, fmt.Errorf("%w: sort_by %q no permitido", domain.ErrInvalidInput, sortBy)
	}

	return repository.ListOptions{
		Limit:      perPage,
		Offset:     (page - 1) * perPage,
		SortColumn: column,
		Desc:       strings.EqualFold(p.SortOrder, "desc"),
	}, nil
}

// NormalizedPage devuelve page y per_page ya acotados, para los metadatos.
func (p PageRequest) NormalizedPage() (page, perPage int) {
	page = p.Page
	if page < 1 {
		page = 1
	}
	perPage = p.PerPage
	if perPage < 1 {
		perPage = 1
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}

// ListMeta metadatos de paginación, insertados al mismo nivel que la lista.
// Se embebe como puntero en cada *ListResponse: nil cuando include_meta=false.
type ListMeta struct {
	Total   int `json:"total"`
	Pages   int `json:"pages"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// NewListMeta calcula los metadatos a partir del total de filas.
func NewListMeta(total, page, perPage int) *ListMeta {
	pages := 0
	if total > 0 {
		pages = (total + perPage - 1) / perPage
	}
	return &ListMeta{Total: total, Pages: pages, Page: page, PerPage: perPage}
}
