package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Taller-api/internal/application/auth"
	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/session"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User // clave: email normalizado
	created []*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{byEmail: map[string]*entity.User{}}
	for _, u := range users {
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byEmail[u.Email] = u
	r.created = append(r.created, u)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	u := r.byEmail[email]
	if u == nil || u.CompanyID != companyID {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) Update(*entity.User) error { return nil }

func (r *fakeUserRepo) ListByCompany(string, int, int) ([]*entity.User, error) { return nil, nil }

func (r *fakeUserRepo) Delete(string) error { return nil }

type fakeCompanyRepo struct {
	byID map[string]*entity.Company
}

func (r *fakeCompanyRepo) Create(*entity.Company) error { return nil }

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) { return r.byID[id], nil }

func (r *fakeCompanyRepo) GetByNIT(string) (*entity.Company, error) { return nil, nil }

func (r *fakeCompanyRepo) Update(*entity.Company) error { return nil }

func (r *fakeCompanyRepo) List(int, int) ([]*entity.Company, error) { return nil, nil }

func (r *fakeCompanyRepo) Delete(string) error { return nil }

// fakeVerifier considera válido el par (raw, "hash:"+raw).
type fakeVerifier struct{}

func (fakeVerifier) Matches(raw, hash string) bool { return hash == "hash:"+raw }

type fakeHasher struct{}

func (fakeHasher) Hash(raw string) (string, error) { return "hash:" + raw, nil }

func usuarioActivo() *entity.User {
	return &entity.User{
		ID:           "00000000-0000-0000-0000-000000000001",
		CompanyID:    "00000000-0000-0000-0000-0000000000aa",
		Email:        "admin@shop.com",
		PasswordHash: "hash:secret",
		Name:         "Admin",
		Role:         entity.RoleAdmin,
		Active:       true,
	}
}

func useCaseCon(users ...*entity.User) *auth.UseCase {
	return auth.NewUseCase(newFakeUserRepo(users...), &fakeCompanyRepo{byID: map[string]*entity.Company{}}, fakeVerifier{}, fakeHasher{})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

// El email se normaliza (espacios y mayúsculas); la contraseña jamás.
func TestLogin_EmailSeNormaliza(t *testing.T) {
	uc := useCaseCon(usuarioActivo())

	for _, email := range []string{"admin@shop.com", " Admin@Shop.com ", "ADMIN@SHOP.COM", "\tadmin@shop.com\n"} {
		user, err := uc.Login(email, "secret")
		require.NoError(t, err, "variante de email %q debe autenticar", email)
		assert.Equal(t, "admin@shop.com", user.Email)
		assert.Equal(t, "00000000-0000-0000-0000-0000000000aa", user.CompanyID)
	}
}

func TestLogin_PasswordNoSeNormaliza(t *testing.T) {
	uc := useCaseCon(usuarioActivo())
	_, err := uc.Login("admin@shop.com", " secret ")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// Email inexistente y contraseña incorrecta devuelven el MISMO error: el caller
// no puede distinguir si la cuenta existe.
func TestLogin_EmailInexistenteYPasswordIncorrecta_MismoError(t *testing.T) {
	uc := useCaseCon(usuarioActivo())

	_, errNoExiste := uc.Login("nadie@shop.com", "secret")
	_, errPassMala := uc.Login("admin@shop.com", "incorrecta")

	assert.ErrorIs(t, errNoExiste, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errPassMala, domain.ErrInvalidCredentials)
	assert.Equal(t, errNoExiste, errPassMala, "ambos fallos deben ser indistinguibles")
}

// Cuenta inactiva → ErrInactiveUser, aunque la contraseña sea correcta
// (de hecho no se verifica).
func TestLogin_UsuarioInactivo(t *testing.T) {
	u := usuarioActivo()
	u.Active = false
	uc := useCaseCon(u)

	_, err := uc.Login("admin@shop.com", "secret")
	assert.ErrorIs(t, err, domain.ErrInactiveUser)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials,
		"inactivo es distinto de credenciales inválidas")

	_, err = uc.Login("admin@shop.com", "cualquiera")
	assert.ErrorIs(t, err, domain.ErrInactiveUser,
		"con cuenta inactiva la contraseña ni se mira")
}

// Escenario completo: login correcto → el caller arranca la sesión y las
// consultas de autorización responden con la empresa del principal.
func TestLogin_ExitosoYSesion(t *testing.T) {
	uc := useCaseCon(usuarioActivo())

	user, err := uc.Login(" Admin@Shop.com ", "secret")
	require.NoError(t, err)

	sess := session.New()
	require.NoError(t, sess.Start(user, "Taller Central"))
	authz := session.NewAuthorization(sess)

	assert.True(t, authz.IsLoggedIn())
	companyID, err := authz.CompanyID()
	require.NoError(t, err)
	assert.Equal(t, user.CompanyID, companyID)

	sess.Clear()
	assert.False(t, authz.IsLoggedIn())
	_, err = authz.CompanyID()
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RegisterUser
// ──────────────────────────────────────────────────────────────────────────────

// sesionConRol arranca una sesión con un principal del rol y empresa dados y
// devuelve su fachada de autorización.
func sesionConRol(t *testing.T, role entity.Role, companyID string) *session.Authorization {
	t.Helper()
	sess := session.New()
	require.NoError(t, sess.Start(&entity.User{
		ID:        "00000000-0000-0000-0000-0000000000ff",
		CompanyID: companyID,
		Email:     "caller@shop.com",
		Role:      role,
		Active:    true,
	}, "Taller Central"))
	return session.NewAuthorization(sess)
}

func TestRegisterUser_HasheaYNormaliza(t *testing.T) {
	companyID := "00000000-0000-0000-0000-0000000000aa"
	repo := newFakeUserRepo()
	companies := &fakeCompanyRepo{byID: map[string]*entity.Company{
		companyID: {ID: companyID, Name: "Taller Central", Active: true},
	}}
	uc := auth.NewUseCase(repo, companies, fakeVerifier{}, fakeHasher{})

	out, err := uc.RegisterUser(sesionConRol(t, entity.RoleAdmin, companyID), dto.RegisterRequest{
		Email:     " Nuevo@Taller.com ",
		Password:  "supersecreta",
		CompanyID: companyID,
		Role:      "employee",
	})
	require.NoError(t, err)
	assert.Equal(t, "nuevo@taller.com", out.Email)
	assert.True(t, out.Active)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "hash:supersecreta", repo.created[0].PasswordHash,
		"la contraseña se persiste hasheada, nunca en claro")
}

func TestRegisterUser_EmailDuplicadoEnEmpresa(t *testing.T) {
	companyID := "00000000-0000-0000-0000-0000000000aa"
	existente := usuarioActivo()
	repo := newFakeUserRepo(existente)
	companies := &fakeCompanyRepo{byID: map[string]*entity.Company{
		companyID: {ID: companyID, Name: "Taller Central", Active: true},
	}}
	uc := auth.NewUseCase(repo, companies, fakeVerifier{}, fakeHasher{})

	_, err := uc.RegisterUser(sesionConRol(t, entity.RoleAdmin, companyID), dto.RegisterRequest{
		Email:     "admin@shop.com",
		Password:  "supersecreta",
		CompanyID: companyID,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegisterUser_EmpresaInexistente(t *testing.T) {
	uc := useCaseCon()
	_, err := uc.RegisterUser(sesionConRol(t, entity.RoleSuperAdmin, "otra"), dto.RegisterRequest{
		Email:     "nuevo@taller.com",
		Password:  "supersecreta",
		CompanyID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterUser_RolInvalido(t *testing.T) {
	uc := useCaseCon()
	_, err := uc.RegisterUser(sesionConRol(t, entity.RoleAdmin, "00000000-0000-0000-0000-0000000000aa"), dto.RegisterRequest{
		Email:     "nuevo@taller.com",
		Password:  "supersecreta",
		CompanyID: "00000000-0000-0000-0000-0000000000aa",
		Role:      "gerente",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Sin sesión activa no se registra a nadie, sea cual sea el cuerpo.
func TestRegisterUser_SinSesionNoPersiste(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, &fakeCompanyRepo{byID: map[string]*entity.Company{}}, fakeVerifier{}, fakeHasher{})

	_, err := uc.RegisterUser(session.NewAuthorization(session.New()), dto.RegisterRequest{
		Email:     "intruso@x.com",
		Password:  "supersecreta",
		CompanyID: "victima-co",
		Role:      "super_admin",
	})
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
	assert.Empty(t, repo.created, "ningún usuario debe persistirse sin sesión")
}

// Un empleado autenticado tampoco puede registrar usuarios.
func TestRegisterUser_EmpleadoProhibido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, &fakeCompanyRepo{byID: map[string]*entity.Company{}}, fakeVerifier{}, fakeHasher{})

	_, err := uc.RegisterUser(sesionConRol(t, entity.RoleEmployee, "empresa-a"), dto.RegisterRequest{
		Email:    "nuevo@taller.com",
		Password: "supersecreta",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, repo.created)
}

// Un admin no registra en empresas ajenas ni otorga super_admin.
func TestRegisterUser_AdminNoEscalaNiCruzaEmpresa(t *testing.T) {
	propia := "00000000-0000-0000-0000-0000000000aa"
	ajena := "00000000-0000-0000-0000-0000000000bb"
	repo := newFakeUserRepo()
	companies := &fakeCompanyRepo{byID: map[string]*entity.Company{
		propia: {ID: propia, Name: "Taller Central", Active: true},
		ajena:  {ID: ajena, Name: "Taller Rival", Active: true},
	}}
	uc := auth.NewUseCase(repo, companies, fakeVerifier{}, fakeHasher{})
	authz := sesionConRol(t, entity.RoleAdmin, propia)

	_, err := uc.RegisterUser(authz, dto.RegisterRequest{
		Email:     "nuevo@taller.com",
		Password:  "supersecreta",
		CompanyID: ajena,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden, "empresa ajena")

	_, err = uc.RegisterUser(authz, dto.RegisterRequest{
		Email:     "nuevo@taller.com",
		Password:  "supersecreta",
		CompanyID: propia,
		Role:      "super_admin",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden, "escalamiento a super_admin")
	assert.Empty(t, repo.created)

	// Sin company_id el registro cae en la empresa del admin.
	out, err := uc.RegisterUser(authz, dto.RegisterRequest{
		Email:    "nuevo@taller.com",
		Password: "supersecreta",
	})
	require.NoError(t, err)
	assert.Equal(t, propia, out.CompanyID)
}

// El super_admin sí registra en cualquier empresa, incluso otro super_admin.
func TestRegisterUser_SuperAdminEnOtraEmpresa(t *testing.T) {
	ajena := "00000000-0000-0000-0000-0000000000bb"
	repo := newFakeUserRepo()
	companies := &fakeCompanyRepo{byID: map[string]*entity.Company{
		ajena: {ID: ajena, Name: "Taller Rival", Active: true},
	}}
	uc := auth.NewUseCase(repo, companies, fakeVerifier{}, fakeHasher{})

	out, err := uc.RegisterUser(sesionConRol(t, entity.RoleSuperAdmin, "central"), dto.RegisterRequest{
		Email:     "nuevo@rival.com",
		Password:  "supersecreta",
		CompanyID: ajena,
		Role:      "super_admin",
	})
	require.NoError(t, err)
	assert.Equal(t, ajena, out.CompanyID)
	assert.Equal(t, "super_admin", out.Role)
}
