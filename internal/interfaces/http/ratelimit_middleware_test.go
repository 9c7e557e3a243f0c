package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/factory-pro/internal/interfaces/http"
	"github.com/tu-usuario/factory-pro/pkg/config"
)

func newLimitedApp(cfg config.RateLimitConfig, perMin int) *fiber.App {
	app := fiber.New()
	app.Get("/ping", apphttp.RateLimiter(cfg, perMin), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"pong": true})
	})
	return app
}

func TestRateLimiter_BloqueaAlSuperarElTecho(t *testing.T) {
	app := newLimitedApp(config.RateLimitConfig{Enabled: true}, 2)

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "petición %d dentro del techo", i+1)
		resp.Body.Close()
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode,
		"la tercera petición en el mismo minuto debe rechazarse")
}

func TestRateLimiter_DeshabilitadoDejaPasar(t *testing.T) {
	app := newLimitedApp(config.RateLimitConfig{Enabled: false}, 1)

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
}
