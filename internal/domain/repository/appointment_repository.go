package repository

import (
	"time"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// AppointmentRepository define el puerto de persistencia para Appointment.
// ExistsOverlap verifica si el vehículo ya tiene una cita agendada que se
// cruza con [startsAt, endsAt); la planificación más allá de ese chequeo
// queda fuera del core.
type AppointmentRepository interface {
	Create(appointment *entity.Appointment) error
	GetByID(id string) (*entity.Appointment, error)
	ExistsOverlap(companyID, vehicleID string, startsAt, endsAt time.Time) (bool, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Appointment, error)
	Update(appointment *entity.Appointment) error
	Delete(id string) error
}
