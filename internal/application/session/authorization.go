package session

import (
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// Authorization fachada de solo lectura sobre un Store: traduce el estado de la
// sesión en decisiones de rol y empresa. Todas las consultas salvo IsLoggedIn
// pasan por RequirePrincipal y comparten su fallo ErrNoActiveSession.
type Authorization struct {
	store *Store
}

// NewAuthorization construye la fachada sobre el store dado.
func NewAuthorization(store *Store) *Authorization {
	return &Authorization{store: store}
}

// RequirePrincipal devuelve el principal autenticado o ErrNoActiveSession.
// Llegar aquí sin sesión desde un pipeline de escritura es un error de contrato
// del caller, no una condición a reintentar.
func (a *Authorization) RequirePrincipal() (*entity.User, error) {
	p := a.store.Current()
	if p == nil {
		return nil, domain.ErrNoActiveSession
	}
	return p, nil
}

// IsLoggedIn es la única consulta que tolera ausencia de sesión.
func (a *Authorization) IsLoggedIn() bool {
	return a.store.IsActive()
}

// HasRole indica si el principal actual tiene exactamente el rol dado.
func (a *Authorization) HasRole(role entity.Role) bool {
	p := a.store.Current()
	return p != nil && p.Role == role
}

// IsAdminOrSuperAdmin predicado compuesto para rutas administrativas.
func (a *Authorization) IsAdminOrSuperAdmin() bool {
	p := a.store.Current()
	return p != nil && p.Role.IsAdminOrSuperAdmin()
}

// CompanyID devuelve la empresa actual o ErrNoActiveSession.
func (a *Authorization) CompanyID() (string, error) {
	p, err := a.RequirePrincipal()
	if err != nil {
		return "", err
	}
	return p.CompanyID, nil
}

// CompanyName devuelve el nombre visible de la empresa actual o ErrNoActiveSession.
func (a *Authorization) CompanyName() (string, error) {
	if _, err := a.RequirePrincipal(); err != nil {
		return "", err
	}
	return a.store.CompanyName()
}
