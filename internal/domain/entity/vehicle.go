package entity

import "time"

// Rango de años de fabricación aceptado para un vehículo (inclusive).
const (
	VehicleYearMin = 1950
	VehicleYearMax = 2100
)

// Vehicle representa un vehículo registrado en el taller.
// Plate (placa) se guarda normalizada (mayúsculas, sin espacios alrededor)
// y es única dentro de la empresa, nunca globalmente.
type Vehicle struct {
	ID         string
	CompanyID  string
	CustomerID string
	Plate      string
	Brand      string
	Model      string
	Year       *int // nil = no informado
	Attributes map[string]string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
