package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Appointment.
const (
	AppointmentScheduled = "scheduled"
	AppointmentDone      = "done"
	AppointmentCancelled = "cancelled"
)

// Appointment representa una cita de taller para un vehículo.
type Appointment struct {
	ID            string
	CompanyID     string
	VehicleID     string
	StartsAt      time.Time
	EndsAt        time.Time
	Notes         string
	EstimatedCost decimal.Decimal // COP
	Status        string          // ver constantes Appointment*
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
