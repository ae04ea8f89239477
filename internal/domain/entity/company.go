package entity

import "time"

// Company representa un taller/tenant del sistema (multi-tenant, enfoque Colombia).
// Toda entidad de negocio pertenece exactamente a una Company; el core nunca la muta.
type Company struct {
	ID        string
	Name      string
	NIT       string // NIT colombiano (con o sin dígito de verificación)
	Address   string
	Phone     string
	Email     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
