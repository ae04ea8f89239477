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

	"github.com/jhoicas/Taller-api/internal/application/auth"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Taller-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para montar el router completo
// ──────────────────────────────────────────────────────────────────────────────

type routerUserRepo struct {
	created []*entity.User
}

func (r *routerUserRepo) Create(u *entity.User) error { r.created = append(r.created, u); return nil }

func (r *routerUserRepo) GetByID(string) (*entity.User, error) { return nil, nil }

func (r *routerUserRepo) FindByEmail(string) (*entity.User, error) { return nil, nil }

func (r *routerUserRepo) GetByEmailAndCompany(string, string) (*entity.User, error) {
	return nil, nil
}

func (r *routerUserRepo) Update(*entity.User) error { return nil }

func (r *routerUserRepo) ListByCompany(string, int, int) ([]*entity.User, error) { return nil, nil }

func (r *routerUserRepo) Delete(string) error { return nil }

type routerCompanyRepo struct {
	byID map[string]*entity.Company
}

func (r *routerCompanyRepo) Create(*entity.Company) error { return nil }

func (r *routerCompanyRepo) GetByID(id string) (*entity.Company, error) { return r.byID[id], nil }

func (r *routerCompanyRepo) GetByNIT(string) (*entity.Company, error) { return nil, nil }

func (r *routerCompanyRepo) Update(*entity.Company) error { return nil }

func (r *routerCompanyRepo) List(int, int) ([]*entity.Company, error) { return nil, nil }

func (r *routerCompanyRepo) Delete(string) error { return nil }

type routerVerifier struct{}

func (routerVerifier) Matches(raw, hash string) bool { return hash == "hash:"+raw }

type routerHasher struct{}

func (routerHasher) Hash(raw string) (string, error) { return "hash:" + raw, nil }

// buildRouterApp monta el router real con repos en memoria. Solo el flujo de
// auth necesita dependencias vivas; el resto de handlers no se invoca aquí.
func buildRouterApp(users *routerUserRepo, companies *routerCompanyRepo) *fiber.App {
	app := fiber.New()
	authUC := auth.NewUseCase(users, companies, routerVerifier{}, routerHasher{})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		CompanyRepo: companies,
		JWT: apphttp.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		},
	})
	return app
}

func postRegister(t *testing.T, app *fiber.App, authHeader string, body map[string]string) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la ruta de registro
// ──────────────────────────────────────────────────────────────────────────────

// Sin token no hay registro: la ruta vive detrás del middleware de sesión.
// Nadie anónimo puede crear un super_admin en una empresa ajena.
func TestRegisterRoute_SinTokenRechazaYNoPersiste(t *testing.T) {
	users := &routerUserRepo{}
	app := buildRouterApp(users, &routerCompanyRepo{byID: map[string]*entity.Company{}})

	resp := postRegister(t, app, "", map[string]string{
		"email":      "intruso@x.com",
		"password":   "12345678",
		"company_id": "victima-co",
		"role":       "super_admin",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, users.created, "sin sesión no debe crearse ningún usuario")
}

// Un empleado autenticado recibe 403 del guard de rol.
func TestRegisterRoute_EmpleadoRecibe403(t *testing.T) {
	users := &routerUserRepo{}
	app := buildRouterApp(users, &routerCompanyRepo{byID: map[string]*entity.Company{}})

	resp := postRegister(t, app, tokenForRole(t, "employee"), map[string]string{
		"email":    "nuevo@taller.com",
		"password": "12345678",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, users.created)
}

// Un admin autenticado sí registra, y el usuario queda en su propia empresa.
func TestRegisterRoute_AdminRegistraEnSuEmpresa(t *testing.T) {
	users := &routerUserRepo{}
	companies := &routerCompanyRepo{byID: map[string]*entity.Company{
		testCompanyID: {ID: testCompanyID, Name: testCompanyName, Active: true},
	}}
	app := buildRouterApp(users, companies)

	resp := postRegister(t, app, tokenForRole(t, "admin"), map[string]string{
		"email":    "nuevo@taller.com",
		"password": "12345678",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, users.created, 1)
	assert.Equal(t, testCompanyID, users.created[0].CompanyID)
	assert.Equal(t, entity.RoleEmployee, users.created[0].Role)
}
