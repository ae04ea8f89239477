package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-api/internal/application/auth"
	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/session"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
	"github.com/jhoicas/Taller-api/pkg/jwt"
)

// JWTConfig configuración para emisión de tokens en el login.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc          *auth.UseCase
	companyRepo repository.CompanyRepository
	jwtCfg      JWTConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase, companyRepo repository.CompanyRepository, jwtCfg JWTConfig) *AuthHandler {
	return &AuthHandler{uc: uc, companyRepo: companyRepo, jwtCfg: jwtCfg}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
//
// El pipeline de credenciales decide; este handler arranca la sesión con el
// principal autenticado y emite el token que la transporta.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	user, err := h.uc.Login(in.Email, in.Password)
	if err != nil {
		return domainError(c, err)
	}

	companyName := ""
	if company, err := h.companyRepo.GetByID(user.CompanyID); err == nil && company != nil {
		companyName = company.Name
	}

	sess := session.New()
	if err := sess.Start(user, companyName); err != nil {
		return domainError(c, err)
	}

	token, err := jwt.Generate(h.jwtCfg.Secret, h.jwtCfg.Issuer, h.jwtCfg.ExpMinutes, jwt.SessionClaims{
		UserID:      user.ID,
		CompanyID:   user.CompanyID,
		CompanyName: companyName,
		Email:       user.Email,
		Name:        user.Name,
		Role:        string(user.Role),
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.LoginResponse{
		Token: token,
		User:  *dto.ToUserResponse(user),
	})
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, company_id"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/auth/register [post]
//
// Ruta protegida: solo admin o super_admin de una sesión activa registran
// usuarios; el caso de uso reaplica la regla sobre la fachada.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	user, err := h.uc.RegisterUser(GetAuthorization(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Me GET /api/me — el principal de la sesión actual.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, err := GetAuthorization(c).RequirePrincipal()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.ToUserResponse(principal))
}
