package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/factory-pro/internal/application/dto"
	"github.com/tu-usuario/factory-pro/internal/domain"
)

func TestNormalize_Defaults(t *testing.T) {
	opts, err := dto.PageRequest{Page: 1, PerPage: 10}.Normalize(dto.EmployeeDefaultSort, dto.EmployeeSortColumns)
	require.NoError(t, err)

	assert.Equal(t, 10, opts.Limit, "el handler entrega per_page=10 cuando el query no lo trae")
	assert.Equal(t, 0, opts.Offset, "la primera página no desplaza")
	assert.Equal(t, "name", opts.SortColumn)
	assert.False(t, opts.Desc, "sin sort_order el orden es ascendente")
}

func TestNormalize_AcotaPageYPerPage(t *testing.T) {
	opts, err := dto.PageRequest{Page: -3, PerPage: 500}.Normalize(dto.EmployeeDefaultSort, dto.EmployeeSortColumns)
	require.NoError(t, err)

	assert.Equal(t, 100, opts.Limit, "per_page se acota a 100")
	assert.Equal(t, 0, opts.Offset, "page menor que 1 se fija en 1")

	opts, err = dto.PageRequest{Page: 3, PerPage: 20}.Normalize(dto.EmployeeDefaultSort, dto.EmployeeSortColumns)
	require.NoError(t, err)
	assert.Equal(t, 40, opts.Offset, "offset = (page-1)*per_page")
}

func TestNormalize_PerPageCeroSeAcotaAUno(t *testing.T) {
	// per_page=0 explícito se acota a 1; no vuelve al valor por defecto.
	for _, perPage := range []int{0, -7} {
		opts, err := dto.PageRequest{Page: 1, PerPage: perPage}.Normalize(dto.EmployeeDefaultSort, dto.EmployeeSortColumns)
		require.NoError(t, err)
		assert.Equal(t, 1, opts.Limit, "per_page=%d debe acotarse a 1", perPage)
	}

	page, perPage := dto.PageRequest{Page: 1, PerPage: 0}.NormalizedPage()
	assert.Equal(t, 1, page)
	assert.Equal(t, 1, perPage, "los metadatos usan el mismo acotamiento")
}

func TestNormalize_SortByFueraDeListaFalla(t *testing.T) {
	_, err := dto.PageRequest{SortBy: "password_hash"}.Normalize(dto.UserDefaultSort, dto.UserSortColumns)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un sort_by fuera de la allow-list no debe llegar a la base")
}

func TestNormalize_SortByPorEntidad(t *testing.T) {
	opts, err := dto.PageRequest{SortBy: "phone"}.Normalize(dto.EmployeeDefaultSort, dto.EmployeeSortColumns)
	require.NoError(t, err, "phone es ordenable en empleados")
	assert.Equal(t, "phone", opts.SortColumn)

	_, err = dto.PageRequest{SortBy: "stock_quantity"}.Normalize(dto.ProductDefaultSort, dto.ProductSortColumns)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"los productos solo ordenan por name y price")
}

func TestNormalize_SortOrderLaxo(t *testing.T) {
	// Solo "desc" (sin distinguir mayúsculas) ordena descendente;
	// cualquier otro valor ordena ascendente sin rechazar.
	for _, tc := range []struct {
		order string
		desc  bool
	}{
		{"desc", true},
		{"DESC", true},
		{"asc", false},
		{"", false},
		{"descending", false},
		{"banana", false},
	} {
		opts, err := dto.PageRequest{SortOrder: tc.order}.Normalize(dto.ProductDefaultSort, dto.ProductSortColumns)
		require.NoError(t, err, "sort_order %q no debe fallar", tc.order)
		assert.Equal(t, tc.desc, opts.Desc, "sort_order %q", tc.order)
	}
}

func TestNewListMeta_CalculaPaginas(t *testing.T) {
	meta := dto.NewListMeta(25, 1, 10)
	assert.Equal(t, 25, meta.Total)
	assert.Equal(t, 3, meta.Pages, "25 filas a 10 por página son 3 páginas")

	meta = dto.NewListMeta(30, 2, 10)
	assert.Equal(t, 3, meta.Pages)

	meta = dto.NewListMeta(0, 1, 10)
	assert.Equal(t, 0, meta.Pages, "sin filas no hay páginas")
}
