package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sem o arquivo docs/swagger.json o servidor deve subir normalmente, apenas
// sem a UI do swagger.
func TestRegisterSwagger_SemArquivo_NaoImpedeOBoot(t *testing.T) {
	app := fiber.New()

	require.NotPanics(t, func() {
		registerSwagger(app, filepath.Join(t.TempDir(), "swagger.json"))
	})

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "sem arquivo não há rota /docs")
}

func TestRegisterSwagger_ComArquivo_MontaUI(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swagger.json")
	doc := `{"swagger":"2.0","info":{"title":"Comercial API","version":"1.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	app := fiber.New()
	require.NotPanics(t, func() {
		registerSwagger(app, path)
	})

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCORS_RespondeAllowOrigin(t *testing.T) {
	app := fiber.New()
	app.Use(cors.New())
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://painel.caixaforte.com.br")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
