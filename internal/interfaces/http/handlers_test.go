package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hendaya/pedidos-api/internal/application/inventory"
	"github.com/hendaya/pedidos-api/internal/application/orders"
	"github.com/hendaya/pedidos-api/internal/domain/catalog"
	infrapdf "github.com/hendaya/pedidos-api/internal/infrastructure/pdf"
	"github.com/hendaya/pedidos-api/internal/infrastructure/storage"
	apphttp "github.com/hendaya/pedidos-api/internal/interfaces/http"
)

// fixedClock reloj congelado para respuestas deterministas.
type fixedClock struct{}

func (fixedClock) Now() time.Time {
	return time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
}

// buildTestApp levanta la app Fiber completa sobre el driver de memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	kv := storage.NewMemoryStore()
	store, err := inventory.NewStore(context.Background(), kv)
	require.NoError(t, err)

	orderUC := orders.NewUseCase(store, kv, fixedClock{}, infrapdf.NewMarotoOrderGenerator())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Store: store, Orders: orderUC})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestGetInventario_DevuelveTodoElCatalogo(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "hendaya", body["branch"])
	assert.Equal(t, float64(len(catalog.Products)), body["total"], "una entrada por producto del catálogo")
}

func TestGetInventario_FiltraPorCategoriaYBusqueda(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/?category=OFICINA&search=lapiz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["total"], "lapiz sin tilde debe encontrar Lápiz Pasta")
}

func TestGetInventario_CategoriaDesconocida(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/?category=FERRETERIA", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(raw), "VALIDATION")
}

func TestSetStock_YLuegoSeRefleja(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/inventory/ase-1/stock", `{"stock": 7}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/?search=cloro%20gel", "")
	body := decodeBody(t, resp)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(7), items[0].(map[string]any)["stock"])
}

func TestSetQuantity_EntradaNoNumericaQuedaEnCero(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/inventory/ase-1/quantity", `{"quantity": "mucho"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/summary", "")
	sum := decodeBody(t, resp)
	assert.Equal(t, float64(0), sum["items_in_order"])
}

func TestSetStock_NegativoSeRecortaACero(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/inventory/off-1/stock", `{"stock": -5}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/?search=papel%20fotocopia%20carta", "")
	body := decodeBody(t, resp)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(0), items[0].(map[string]any)["stock"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Sucursales
// ──────────────────────────────────────────────────────────────────────────────

func TestBranches_ListaYActiva(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/branches/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "hendaya", body["active"])
	assert.Len(t, body["items"].([]any), 5)
}

func TestSwitchBranch_DesconocidaRetorna404(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/branches/active", `{"branch_id": "marte"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(raw), "UNKNOWN_BRANCH")
}

func TestSwitchBranch_AislaDatosPorSucursal(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/inventory/ase-1/stock", `{"stock": 9}`)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, "/api/branches/active", `{"branch_id": "las_condes"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/?search=cloro%20gel", "")
	body := decodeBody(t, resp)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(0), items[0].(map[string]any)["stock"],
		"la nueva sucursal no debe ver el stock de la anterior")

	resp = doJSON(t, app, http.MethodPut, "/api/branches/active", `{"branch_id": "hendaya"}`)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/?search=cloro%20gel", "")
	body = decodeBody(t, resp)
	items = body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(9), items[0].(map[string]any)["stock"],
		"al volver, la sucursal original conserva su estado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes de compra
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearOrden_VaciaRetorna409(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/orders/", "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(raw), "EMPTY_ORDER")
}

func TestCrearOrden_FlujoCompleto(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/inventory/ase-1/stock", `{"stock": 2}`)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPut, "/api/inventory/ase-1/quantity", `{"quantity": 10}`)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/orders/", "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "HEN-0001", body["folio"])
	assert.Equal(t, "OC_HEN-0001_Hendaya.txt", body["file_name"])
	assert.Equal(t, float64(10), body["total_units"])
	assert.Contains(t, body["document"], "ORDEN DE COMPRA N° HEN-0001")
	assert.Contains(t, body["document"], "TOTAL ÍTEMS A PEDIR: 10")

	// El siguiente folio es consecutivo
	resp = doJSON(t, app, http.MethodPost, "/api/orders/", "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "HEN-0002", body["folio"])
}

func TestVaciarPedidoEnCurso(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/inventory/ase-1/quantity", `{"quantity": 3}`)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/orders/current", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/summary", "")
	sum := decodeBody(t, resp)
	assert.Equal(t, float64(0), sum["items_in_order"])

	// Sin cantidades, generar vuelve a ser 409
	resp = doJSON(t, app, http.MethodPost, "/api/orders/", "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestCrearOrden_FormatoPDF(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/inventory/coc-1/quantity", `{"quantity": 5}`)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/orders/?format=pdf", "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "OC_HEN-0001_Hendaya.pdf")

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.Equal(t, "%PDF", string(raw[:4]))
}
