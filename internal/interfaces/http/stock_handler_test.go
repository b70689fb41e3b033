package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/inventory"
	apphttp "github.com/ludsonalmeida/vrtd-inventory-sub000/internal/interfaces/http"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/pkg/config"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/pkg/metrics"
)

// buildCountApp monta uma app com a rota de contagem diária e um middleware
// que injeta o user_id, sem precisar de JWT real.
func buildCountApp() *fiber.App {
	app := fiber.New()
	countUC := inventory.NewDailyCountUseCase(nil, nil, config.CountConfig{
		OnMissingItem: config.OnMissingItemSkip,
		DefaultReason: "Contagem diária",
	})
	handler := apphttp.NewStockHandler(nil, countUC, metrics.New("test"))
	app.Post("/api/stock/daily-count",
		func(c *fiber.Ctx) error {
			c.Locals(apphttp.LocalUserID, testUserID)
			return c.Next()
		},
		handler.DailyCount,
	)
	return app
}

func postCount(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/stock/daily-count", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Corpo que não é um array JSON → 400 INVALID_BODY antes de tocar o caso de uso.
func TestDailyCount_CorpoNaoArray_Retorna400(t *testing.T) {
	app := buildCountApp()
	resp := postCount(t, app, `{"product_id":"x","quantity":1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"objeto JSON no lugar de array deve ser rejeitado")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_BODY")
}

// Array vazio → 400 EMPTY_BATCH.
func TestDailyCount_ArrayVazio_Retorna400(t *testing.T) {
	app := buildCountApp()
	resp := postCount(t, app, `[]`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "EMPTY_BATCH")
}

// Sem user_id nos locals → 401.
func TestDailyCount_SemUsuario_Retorna401(t *testing.T) {
	app := fiber.New()
	countUC := inventory.NewDailyCountUseCase(nil, nil, config.CountConfig{OnMissingItem: config.OnMissingItemSkip})
	handler := apphttp.NewStockHandler(nil, countUC, metrics.New("test_noauth"))
	app.Post("/api/stock/daily-count", handler.DailyCount)

	resp := postCount(t, app, `[{"product_id":"x","quantity":1}]`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
