package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/flatfile"
	apphttp "github.com/jhoicas/Tienda-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Tienda-api/pkg/jwt"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "tienda-api-test"
	testExpMin    = 60

	testAdminUser = "admin_root"
	testAdminPass = "admin123"
)

// buildTestApp levanta una app Fiber completa sobre repositorios de
// archivo plano en un directorio temporal, con el admin semilla creado.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dir := t.TempDir()
	log := logger.Nop()

	users, err := flatfile.NewUserRepository(filepath.Join(dir, "users.txt"), log)
	require.NoError(t, err)
	products, err := flatfile.NewProductRepository(filepath.Join(dir, "products.txt"), log)
	require.NoError(t, err)
	orders, err := flatfile.NewOrderRepository(filepath.Join(dir, "orders.txt"), log)
	require.NoError(t, err)

	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	require.NoError(t, authUC.EnsureAdmin(testAdminUser, testAdminPass))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    authUC,
		UserUC:    usecase.NewUserUseCase(users),
		ProductUC: usecase.NewProductUseCase(products),
		OrderUC:   usecase.NewOrderUseCase(orders),
		JWTSecret: testJWTSecret,
	})
	return app
}

// doJSON lanza una petición con cuerpo JSON opcional y token opcional.
func doJSON(t *testing.T, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// registerCustomer registra un cliente válido y devuelve su id.
func registerCustomer(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register",
		`{"username":"`+username+`","password":"clave1","email":"`+username+`@tienda.com","mobile":"0412345678"}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, "el registro debe responder 201")
	body := decodeBody(t, resp)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

// login devuelve el token para un usuario ya registrado.
func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		`{"username":"`+username+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, "el login debe responder 200")
	body := decodeBody(t, resp)
	tok, _ := body["token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth: registro y login
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_RegistroYLogin(t *testing.T) {
	app := buildTestApp(t)

	registerCustomer(t, app, "maria_lopez")
	tok := login(t, app, "maria_lopez", "clave1")

	resp := doJSON(t, app, http.MethodGet, "/api/me", "", tok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "maria_lopez", body["username"])
	assert.Equal(t, "customer", body["role"])
	_, hasPassword := body["password"]
	assert.False(t, hasPassword, "la respuesta no debe exponer la contraseña")
}

func TestAuth_RegistroInvalido_Retorna400(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register",
		`{"username":"ab","password":"clave1","email":"a@b.com","mobile":"0412345678"}`, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "VALIDATION")
}

func TestAuth_RegistroDuplicado_Retorna409(t *testing.T) {
	app := buildTestApp(t)
	registerCustomer(t, app, "pedro_gomez")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register",
		`{"username":"pedro_gomez","password":"clave1","email":"otro@tienda.com","mobile":"0412345678"}`, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAuth_LoginClaveIncorrecta_Retorna401(t *testing.T) {
	app := buildTestApp(t)
	registerCustomer(t, app, "laura_diaz")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		`{"username":"laura_diaz","password":"claveMala1"}`, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RBAC: rutas de administración
// ──────────────────────────────────────────────────────────────────────────────

func TestRBAC_ClienteBloqueadoEnRutasAdmin(t *testing.T) {
	app := buildTestApp(t)
	registerCustomer(t, app, "carla_ruiz")
	tok := login(t, app, "carla_ruiz", "clave1")

	resp := doJSON(t, app, http.MethodGet, "/api/customers", "", tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un cliente no debe poder listar clientes")

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "FORBIDDEN")
}

func TestRBAC_AdminListaClientes(t *testing.T) {
	app := buildTestApp(t)
	registerCustomer(t, app, "diego_soto")
	adminTok := login(t, app, testAdminUser, testAdminPass)

	resp := doJSON(t, app, http.MethodGet, "/api/customers", "", adminTok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	items, _ := body["items"].([]interface{})
	assert.Len(t, items, 1, "el admin semilla no debe aparecer como cliente")
}

func TestRBAC_SinToken_Retorna401(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/me", "", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRBAC_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/me", "", "token.invalido.aqui")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos: catálogo público y mutaciones admin
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_CatalogoPublico(t *testing.T) {
	app := buildTestApp(t)
	adminTok := login(t, app, testAdminUser, testAdminPass)

	resp := doJSON(t, app, http.MethodPost, "/api/products",
		`{"model":"M-100","category":"audio","name":"Parlante Max","current_price":"99.90","raw_price":"120.00","discount":"17.00","likes_count":3}`, adminTok)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	// Consultas sin token: deben funcionar.
	resp = doJSON(t, app, http.MethodGet, "/api/products/"+id, "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Parlante Max", body["name"])

	resp = doJSON(t, app, http.MethodGet, "/api/products/search?keyword=parlante", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestProductos_ClienteNoPuedeCrear(t *testing.T) {
	app := buildTestApp(t)
	registerCustomer(t, app, "nuevo_cliente")
	tok := login(t, app, "nuevo_cliente", "clave1")

	resp := doJSON(t, app, http.MethodPost, "/api/products",
		`{"model":"M-1","category":"x","name":"Algo","current_price":"1.00","raw_price":"1.00","discount":"0.00","likes_count":0}`, tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes: propias vs administración
// ──────────────────────────────────────────────────────────────────────────────

func TestOrdenes_CrearYListarPropias(t *testing.T) {
	app := buildTestApp(t)
	adminTok := login(t, app, testAdminUser, testAdminPass)

	resp := doJSON(t, app, http.MethodPost, "/api/products",
		`{"model":"M-200","category":"hogar","name":"Lampara","current_price":"20.00","raw_price":"25.00","discount":"20.00","likes_count":0}`, adminTok)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	productID, _ := decodeBody(t, resp)["id"].(string)

	registerCustomer(t, app, "comprador_uno")
	tok := login(t, app, "comprador_uno", "clave1")

	resp = doJSON(t, app, http.MethodPost, "/api/orders", `{"product_id":"`+productID+`"}`, tok)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/orders", "", tok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	items, _ := body["items"].([]interface{})
	assert.Len(t, items, 1)

	// El listado global es solo para admin.
	resp = doJSON(t, app, http.MethodGet, "/api/admin/orders", "", tok)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/admin/orders", "", adminTok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// JWT pkg — integridad de generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "u_0000000001", "customer", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u_0000000001", userID)
	assert.Equal(t, "customer", role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "u_0000000001", "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "u_0000000001", "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
