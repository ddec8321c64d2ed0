package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/application/inventory"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/application/usecase"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/repository"
	apphttp "github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/interfaces/http"
)

// errTxRunner implementa inventory.TxRunner devolviendo un error fijo, como
// haría una transacción que falla dentro del callback.
type errTxRunner struct {
	err error
}

func (r *errTxRunner) Run(_ context.Context, _ func(repository.MovimientoRepository, repository.ProductoRepository) error) error {
	return r.err
}

func movimientoApp(txErr error) *fiber.App {
	registrar := inventory.NewRegistrarMovimientoUseCase(&errTxRunner{err: txErr})
	h := apphttp.NewMovimientoHandler(registrar, &usecase.MovimientoUseCase{})
	app := fiber.New()
	app.Post("/api/movimientos", h.Registrar)
	return app
}

func postMovimiento(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/movimientos", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

const bodyValido = `{
	"producto_id": "1b4e28ba-2fa1-4d3b-a3f5-ef19b5a7633b",
	"tipo": "salida",
	"cantidad": 2,
	"motivo": "venta",
	"proveedor_id": "9f8b4a6c-3d2e-4f1a-b5c6-d7e8f9a0b1c2"
}`

// Un proveedor_id que no existe en la tabla de proveedores debe responder
// 400 con REFERENCE_NOT_FOUND, nunca 500 con el mensaje crudo del driver.
func TestRegistrarMovimiento_ProveedorInexistente_Retorna400(t *testing.T) {
	app := movimientoApp(domain.ErrReferenceNotFound)

	resp := postMovimiento(t, app, bodyValido)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "REFERENCE_NOT_FOUND")
}

func TestRegistrarMovimiento_StockInsuficiente_Retorna409(t *testing.T) {
	app := movimientoApp(domain.ErrInsufficientStock)

	resp := postMovimiento(t, app, bodyValido)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INSUFFICIENT_STOCK")
}

func TestRegistrarMovimiento_ProductoInexistente_Retorna400(t *testing.T) {
	app := movimientoApp(domain.ErrProductNotFound)

	resp := postMovimiento(t, app, bodyValido)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "PRODUCT_NOT_FOUND")
}
