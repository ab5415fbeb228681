package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/arsenal-api/internal/application/auth"
	appledger "github.com/jhoicas/arsenal-api/internal/application/ledger"
	"github.com/jhoicas/arsenal-api/internal/application/usecase"
	"github.com/jhoicas/arsenal-api/internal/domain/entity"
	apphttp "github.com/jhoicas/arsenal-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/arsenal-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// stubUserRepo satisface repository.UserRepository; estas rutas no lo tocan.
type stubUserRepo struct{}

func (stubUserRepo) Create(*entity.User) error                      { return nil }
func (stubUserRepo) FindByID(string) (*entity.User, error)          { return nil, nil }
func (stubUserRepo) FindByEmail(string) (*entity.User, error)       { return nil, nil }
func (stubUserRepo) Update(*entity.User) error                      { return nil }
func (stubUserRepo) List(int, int) ([]*entity.User, error)          { return nil, nil }

// newAPI levanta la app Fiber completa con el almacén en memoria.
func newAPI(t *testing.T) (*fiber.App, *appledger.Store) {
	t.Helper()
	store := appledger.NewStore(nil, nil)
	repo := stubUserRepo{}
	cfg := auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    auth.NewAuthUseCase(repo, store, cfg),
		UserUC:    usecase.NewUserUseCase(repo),
		Store:     store,
		JWTSecret: testJWTSecret,
	})
	return app, store
}

// do lanza una petición JSON autenticada y decodifica la respuesta en out.
func do(t *testing.T, app *fiber.App, method, path, token string, body, out interface{}) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func adminToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleAdmin, "", testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}

func logisticsToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleLogistics, testBaseID, testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo sobre las rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestRutas_FlujoCompraTrasladoYMetricas(t *testing.T) {
	app, _ := newAPI(t)
	admin := adminToken(t)

	var norte, sur struct {
		ID string `json:"id"`
	}
	code := do(t, app, http.MethodPost, "/api/bases", admin,
		fiber.Map{"name": "Base Norte", "location": "Sector 1"}, &norte)
	require.Equal(t, http.StatusCreated, code)
	code = do(t, app, http.MethodPost, "/api/bases", admin,
		fiber.Map{"name": "Base Sur", "location": "Sector 2"}, &sur)
	require.Equal(t, http.StatusCreated, code)

	var rifle struct {
		ID       string `json:"id"`
		Quantity int64  `json:"quantity"`
	}
	code = do(t, app, http.MethodPost, "/api/assets", admin,
		fiber.Map{"name": "M4 Carbine", "type": "weapon", "base_id": norte.ID, "quantity": 100}, &rifle)
	require.Equal(t, http.StatusCreated, code)

	// Compra: acredita 20 → 120.
	code = do(t, app, http.MethodPost, "/api/purchases", admin,
		fiber.Map{"asset_id": rifle.ID, "base_id": norte.ID, "quantity": 20, "cost": "45000"}, nil)
	require.Equal(t, http.StatusCreated, code)

	code = do(t, app, http.MethodGet, "/api/assets/"+rifle.ID, admin, nil, &rifle)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(120), rifle.Quantity)

	// Traslado por encima del stock → 409, sin efectos.
	var errBody struct {
		Code string `json:"code"`
	}
	code = do(t, app, http.MethodPost, "/api/transfers", admin,
		fiber.Map{"asset_id": rifle.ID, "from_base_id": norte.ID, "to_base_id": sur.ID, "quantity": 150}, &errBody)
	require.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "INSUFFICIENT_STOCK", errBody.Code)

	// Traslado válido: debita el origen al crearse.
	var tr struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	code = do(t, app, http.MethodPost, "/api/transfers", admin,
		fiber.Map{"asset_id": rifle.ID, "from_base_id": norte.ID, "to_base_id": sur.ID, "quantity": 30}, &tr)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "pending", tr.Status)

	code = do(t, app, http.MethodGet, "/api/assets/"+rifle.ID, admin, nil, &rifle)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(90), rifle.Quantity)

	// Avance: pending → in-transit → completed → 409.
	code = do(t, app, http.MethodPatch, "/api/transfers/"+tr.ID+"/advance", admin, nil, &tr)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "in-transit", tr.Status)

	code = do(t, app, http.MethodPatch, "/api/transfers/"+tr.ID+"/advance", admin, nil, &tr)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "completed", tr.Status)

	code = do(t, app, http.MethodPatch, "/api/transfers/"+tr.ID+"/advance", admin, nil, &errBody)
	require.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "CONFLICT", errBody.Code)

	// Métricas del destino: la entrada aparece al completarse el traslado.
	var metrics struct {
		TransferIn  int64 `json:"transfer_in"`
		NetMovement int64 `json:"net_movement"`
	}
	code = do(t, app, http.MethodGet, "/api/dashboard/metrics?base_id="+sur.ID, admin, nil, &metrics)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(30), metrics.TransferIn)
	assert.Equal(t, int64(30), metrics.NetMovement)
}

// El RBAC de las rutas: logistics no entra a asignaciones ni gastos, y la
// administración es exclusiva de admin.
func TestRutas_RBACPorSeccion(t *testing.T) {
	app, _ := newAPI(t)
	logistics := logisticsToken(t)

	code := do(t, app, http.MethodGet, "/api/dashboard/metrics", logistics, nil, nil)
	assert.Equal(t, http.StatusOK, code, "logistics ve el dashboard")

	code = do(t, app, http.MethodGet, "/api/purchases", logistics, nil, nil)
	assert.Equal(t, http.StatusOK, code, "logistics ve compras")

	code = do(t, app, http.MethodGet, "/api/assignments", logistics, nil, nil)
	assert.Equal(t, http.StatusForbidden, code, "asignaciones son de admin/commander")

	code = do(t, app, http.MethodGet, "/api/expenditures", logistics, nil, nil)
	assert.Equal(t, http.StatusForbidden, code, "gastos son de admin/commander")

	code = do(t, app, http.MethodPost, "/api/bases", logistics,
		fiber.Map{"name": "Base Pirata"}, nil)
	assert.Equal(t, http.StatusForbidden, code, "crear bases es de admin")

	code = do(t, app, http.MethodGet, "/api/users", logistics, nil, nil)
	assert.Equal(t, http.StatusForbidden, code, "usuarios es de admin")

	code = do(t, app, http.MethodGet, "/api/purchases", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, code, "sin token no hay acceso")
}

func TestRutas_RecursoInexistente_Retorna404(t *testing.T) {
	app, _ := newAPI(t)
	admin := adminToken(t)

	var errBody struct {
		Code string `json:"code"`
	}
	code := do(t, app, http.MethodGet, "/api/assets/no-existe", admin, nil, &errBody)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", errBody.Code)
}
