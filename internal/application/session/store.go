// Package session mantiene el vínculo "principal autenticado ↔ empresa actual"
// de un contexto de ejecución. El Store se pasa explícitamente por referencia a
// cada caso de uso (nada de estado global); en HTTP se construye uno por request
// a partir de los claims del token.
package session

import (
	"sync"

	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// Store fuente única de verdad de "quién está autenticado y en qué empresa".
// Un solo lock grueso cubre cada operación individual: Start/Clear/lecturas no
// se entrelazan entre sí, pero dos lecturas separadas de un mismo caller pueden
// observar sesiones distintas.
type Store struct {
	mu          sync.Mutex
	principal   *entity.User
	companyName string
}

// New crea un Store sin sesión activa.
func New() *Store {
	return &Store{}
}

// Start inicia la sesión para principal, reemplazando atómicamente cualquier
// sesión previa. companyName es el nombre visible de la empresa (puede ser vacío).
func (s *Store) Start(principal *entity.User, companyName string) error {
	if principal == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.principal = principal
	s.companyName = companyName
	return nil
}

// Clear elimina la sesión. Idempotente.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.principal = nil
	s.companyName = ""
}

// Current devuelve el principal autenticado o nil si no hay sesión.
func (s *Store) Current() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.principal
}

// IsActive indica si hay una sesión viva.
func (s *Store) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.principal != nil
}

// CompanyID devuelve la empresa del principal autenticado.
func (s *Store) CompanyID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.principal == nil {
		return "", domain.ErrNoActiveSession
	}
	return s.principal.CompanyID, nil
}

// CompanyName devuelve el nombre visible de la empresa de la sesión.
func (s *Store) CompanyName() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.principal == nil {
		return "", domain.ErrNoActiveSession
	}
	return s.companyName, nil
}
