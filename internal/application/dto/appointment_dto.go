package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleAppointmentRequest entrada para agendar una cita de taller.
type ScheduleAppointmentRequest struct {
	VehicleID     string          `json:"vehicle_id" validate:"required,uuid"`
	StartsAt      time.Time       `json:"starts_at" validate:"required"`
	EndsAt        time.Time       `json:"ends_at" validate:"required"`
	Notes         string          `json:"notes"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
}

// AppointmentResponse salida de una cita.
type AppointmentResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	VehicleID     string          `json:"vehicle_id"`
	StartsAt      time.Time       `json:"starts_at"`
	EndsAt        time.Time       `json:"ends_at"`
	Notes         string          `json:"notes,omitempty"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
