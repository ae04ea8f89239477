package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/session"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/pkg/jwt"
)

// Locals key para la fachada de autorización del request.
const localAuthorization = "authorization"

// AuthMiddleware valida el Bearer Token JWT y reconstruye la sesión del request
// a partir de los claims (snapshot del principal tomado en el login; Active no
// se reverifica aquí: una cuenta desactivada conserva su sesión hasta expirar
// el token). La sesión y su fachada quedan en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}

		sess := session.New()
		if err := sess.Start(&entity.User{
			ID:        claims.UserID,
			CompanyID: claims.CompanyID,
			Email:     claims.Email,
			Name:      claims.Name,
			Role:      entity.Role(claims.Role),
			Active:    true, // verificado en el login
		}, claims.CompanyName); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token sin principal"})
		}
		c.Locals(localAuthorization, session.NewAuthorization(sess))
		return c.Next()
	}
}

// GetAuthorization devuelve la fachada de autorización del request.
// Sin AuthMiddleware previo devuelve una fachada sin sesión (todo falla con
// ErrNoActiveSession), nunca nil.
func GetAuthorization(c *fiber.Ctx) *session.Authorization {
	if a, ok := c.Locals(localAuthorization).(*session.Authorization); ok {
		return a
	}
	return session.NewAuthorization(session.New())
}

// RequireRole autoriza solo a los roles indicados. Debe usarse DESPUÉS de
// AuthMiddleware. Token sin rol → 401; rol no permitido → 403.
func RequireRole(allowed ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := GetAuthorization(c)
		principal, err := authz.RequirePrincipal()
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "se requiere sesión activa"})
		}
		if !principal.Role.Valid() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sin rol"})
		}
		for _, role := range allowed {
			if principal.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
	}
}

// RequireAdminOrSuperAdmin atajo para las rutas administrativas.
func RequireAdminOrSuperAdmin() fiber.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin)
}
