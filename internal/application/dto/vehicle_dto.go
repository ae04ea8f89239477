package dto

import "time"

// SaveVehicleRequest entrada para registrar o actualizar un vehículo.
// ID vacío = creación; no vacío = actualización. La empresa destino nunca
// viene en el request: siempre es la empresa de la sesión actual.
type SaveVehicleRequest struct {
	ID         string            `json:"id" validate:"omitempty,uuid"`
	CustomerID string            `json:"customer_id" validate:"required,uuid"`
	Plate      string            `json:"plate" validate:"required"`
	Brand      string            `json:"brand"`
	Model      string            `json:"model"`
	Year       *int              `json:"year"`
	Attributes map[string]string `json:"attributes"`
}

// VehicleResponse salida de un vehículo (placa ya normalizada).
type VehicleResponse struct {
	ID         string            `json:"id"`
	CompanyID  string            `json:"company_id"`
	CustomerID string            `json:"customer_id"`
	Plate      string            `json:"plate"`
	Brand      string            `json:"brand"`
	Model      string            `json:"model"`
	Year       *int              `json:"year,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// VehicleListResponse lista paginada de vehículos.
type VehicleListResponse struct {
	Items []VehicleResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
