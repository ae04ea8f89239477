package dto

import "time"

// SaveCustomerRequest entrada para crear o actualizar un cliente.
// ID vacío = creación; no vacío = actualización. CompanyID nunca viene del
// cliente: se toma de la sesión.
type SaveCustomerRequest struct {
	ID    string `json:"id" validate:"omitempty,uuid"`
	Name  string `json:"name" validate:"required,min=1,max=200"`
	TaxID string `json:"tax_id" validate:"required,min=1,max=20"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
