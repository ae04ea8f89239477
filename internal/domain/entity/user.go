package entity

import "time"

// Role rol cerrado de un usuario. Los predicados con nombre viven aquí
// para no repetir comparaciones de strings en cada caso de uso.
type Role string

// Roles válidos para User.
const (
	RoleEmployee   Role = "employee"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Valid indica si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleAdmin || r == RoleSuperAdmin
}

func (r Role) IsEmployee() bool   { return r == RoleEmployee }
func (r Role) IsAdmin() bool      { return r == RoleAdmin }
func (r Role) IsSuperAdmin() bool { return r == RoleSuperAdmin }

// IsAdminOrSuperAdmin predicado compuesto usado por las rutas administrativas.
func (r Role) IsAdminOrSuperAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// User representa un usuario del sistema (pertenece a una Company).
// Inmutable para el core: solo la capa de persistencia lo escribe.
type User struct {
	ID           string
	CompanyID    string
	Email        string // siempre normalizado a minúsculas
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
