package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/factory-pro/internal/application/usecase"
	"github.com/tu-usuario/factory-pro/internal/domain/entity"
	"github.com/tu-usuario/factory-pro/internal/domain/repository"
	apphttp "github.com/tu-usuario/factory-pro/internal/interfaces/http"
)

// fakeEmployeeRepo repo en memoria, suficiente para probar el handler.
type fakeEmployeeRepo struct {
	seq   int64
	items map[int64]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{items: map[int64]*entity.Employee{}}
}

func (f *fakeEmployeeRepo) Create(e *entity.Employee) error {
	f.seq++
	e.ID = f.seq
	cp := *e
	f.items[e.ID] = &cp
	return nil
}

func (f *fakeEmployeeRepo) GetByID(id int64) (*entity.Employee, error) {
	e, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(email string) (*entity.Employee, error) {
	for _, e := range f.items {
		if e.Email == email {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) GetByPhone(phone string) (*entity.Employee, error) {
	for _, e := range f.items {
		if e.Phone == phone {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(e *entity.Employee) error {
	cp := *e
	f.items[e.ID] = &cp
	return nil
}

func (f *fakeEmployeeRepo) Delete(id int64) error {
	delete(f.items, id)
	return nil
}

func (f *fakeEmployeeRepo) SoftDelete(id int64, at time.Time) error {
	if e, ok := f.items[id]; ok {
		e.DeletedAt = &at
	}
	return nil
}

func (f *fakeEmployeeRepo) Restore(id int64) error {
	if e, ok := f.items[id]; ok {
		e.DeletedAt = nil
	}
	return nil
}

func (f *fakeEmployeeRepo) List(opts repository.ListOptions) ([]*entity.Employee, error) {
	out := make([]*entity.Employee, 0, len(f.items))
	for i := int64(1); i <= f.seq; i++ {
		if e, ok := f.items[i]; ok {
			cp := *e
			out = append(out, &cp)
		}
	}
	if opts.Offset >= len(out) {
		return nil, nil
	}
	out = out[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Count() (int, error) { return len(f.items), nil }

func newEmployeeApp() (*fiber.App, *fakeEmployeeRepo) {
	repo := newFakeEmployeeRepo()
	handler := apphttp.NewEmployeeHandler(usecase.NewEmployeeUseCase(repo))

	app := fiber.New()
	app.Post("/employees", handler.Create)
	app.Get("/employees", handler.List)
	app.Get("/employees/:id", handler.GetByID)
	app.Put("/employees/:id", handler.Update)
	app.Delete("/employees/:id", handler.Delete)
	return app, repo
}

func jsonRequest(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

const validEmployeeJSON = `{"name":"Laura Gómez","position":"Operaria","email":"laura@fabrica.co","phone":"+13001234567"}`

func TestEmployeeHandler_CreateRetorna201(t *testing.T) {
	app, _ := newEmployeeApp()

	resp := jsonRequest(t, app, http.MethodPost, "/employees", validEmployeeJSON)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Laura Gómez", body["name"])
	assert.NotContains(t, body, "deleted_at", "deleted_at null se omite de la respuesta")
}

func TestEmployeeHandler_CreateInvalidoRetorna400(t *testing.T) {
	app, _ := newEmployeeApp()

	resp := jsonRequest(t, app, http.MethodPost, "/employees",
		`{"name":"Laura","position":"Operaria","email":"no-es-email","phone":"+13001234567"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body, "error", `los errores usan el envoltorio {"error": ...}`)
}

func TestEmployeeHandler_CreateDuplicadoRetorna400(t *testing.T) {
	app, _ := newEmployeeApp()

	resp := jsonRequest(t, app, http.MethodPost, "/employees", validEmployeeJSON)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = jsonRequest(t, app, http.MethodPost, "/employees", validEmployeeJSON)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestEmployeeHandler_GetInexistenteRetorna404(t *testing.T) {
	app, _ := newEmployeeApp()

	resp := jsonRequest(t, app, http.MethodGet, "/employees/42", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestEmployeeHandler_IDNoNumericoRetorna404(t *testing.T) {
	app, _ := newEmployeeApp()

	resp := jsonRequest(t, app, http.MethodGet, "/employees/abc", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestEmployeeHandler_ListConMeta(t *testing.T) {
	app, _ := newEmployeeApp()

	for _, payload := range []string{
		validEmployeeJSON,
		`{"name":"Pedro Ruiz","position":"Supervisor","email":"pedro@fabrica.co","phone":"+13009876543"}`,
		`{"name":"Ana Díaz","position":"Calidad","email":"ana@fabrica.co","phone":"+13005556677"}`,
	} {
		resp := jsonRequest(t, app, http.MethodPost, "/employees", payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := jsonRequest(t, app, http.MethodGet, "/employees?page=1&per_page=2", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	employees, ok := body["employees"].([]interface{})
	require.True(t, ok, "el listado va bajo la clave de la entidad")
	assert.Len(t, employees, 2)
	assert.Equal(t, float64(3), body["total"])
	assert.Equal(t, float64(2), body["pages"])
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(2), body["per_page"])
}

func TestEmployeeHandler_ListSinMeta(t *testing.T) {
	app, _ := newEmployeeApp()

	resp := jsonRequest(t, app, http.MethodPost, "/employees", validEmployeeJSON)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = jsonRequest(t, app, http.MethodGet, "/employees?include_meta=false", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body, "employees")
	assert.NotContains(t, body, "total", "sin include_meta el envoltorio no trae totales")
	assert.NotContains(t, body, "pages")
}

func TestEmployeeHandler_ListSortByInvalidoRetorna400(t *testing.T) {
	app, _ := newEmployeeApp()

	resp := jsonRequest(t, app, http.MethodGet, "/employees?sort_by=salario", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestEmployeeHandler_UpdateParcial(t *testing.T) {
	app, _ := newEmployeeApp()

	resp := jsonRequest(t, app, http.MethodPost, "/employees", validEmployeeJSON)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = jsonRequest(t, app, http.MethodPut, "/employees/1", `{"position":"Jefa de turno"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Jefa de turno", body["position"])
	assert.Equal(t, "Laura Gómez", body["name"], "los campos ausentes no se tocan")
}

func TestEmployeeHandler_Delete(t *testing.T) {
	app, repo := newEmployeeApp()

	resp := jsonRequest(t, app, http.MethodPost, "/employees", validEmployeeJSON)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = jsonRequest(t, app, http.MethodDelete, "/employees/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Contains(t, body["message"], "deleted")

	got, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Nil(t, got, "el delete de la ruta es físico")
}
