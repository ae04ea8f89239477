package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/session"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// AppointmentUseCase agenda citas de taller. El único invariante de agenda que
// se verifica aquí es el solape por vehículo; la planificación queda fuera.
type AppointmentUseCase struct {
	appointmentRepo repository.AppointmentRepository
	vehicleRepo     repository.VehicleRepository
}

// NewAppointmentUseCase construye el caso de uso.
func NewAppointmentUseCase(appointmentRepo repository.AppointmentRepository, vehicleRepo repository.VehicleRepository) *AppointmentUseCase {
	return &AppointmentUseCase{appointmentRepo: appointmentRepo, vehicleRepo: vehicleRepo}
}

// Schedule agenda una cita para un vehículo de la empresa actual.
// Mismo esquema que Vehicle.Save: requeridos → pertenencia del vehículo a la
// empresa → rango de fechas → solape → persistir.
func (uc *AppointmentUseCase) Schedule(authz *session.Authorization, in dto.ScheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	companyID, err := authz.CompanyID()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.VehicleID) == "" || in.StartsAt.IsZero() || in.EndsAt.IsZero() {
		return nil, domain.NewValidationError("vehicle_id, starts_at y ends_at son requeridos")
	}
	vehicle, err := uc.vehicleRepo.GetByID(in.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil || vehicle.CompanyID != companyID {
		return nil, domain.NewValidationError("el vehículo no pertenece a su empresa")
	}
	if !in.EndsAt.After(in.StartsAt) {
		return nil, domain.NewValidationError("ends_at debe ser posterior a starts_at")
	}
	if in.EstimatedCost.IsNegative() {
		return nil, domain.NewValidationError("el costo estimado no puede ser negativo")
	}
	overlap, err := uc.appointmentRepo.ExistsOverlap(companyID, in.VehicleID, in.StartsAt, in.EndsAt)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, domain.NewDuplicateError("el vehículo ya tiene una cita en ese horario")
	}
	now := time.Now()
	appointment := &entity.Appointment{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		VehicleID:     in.VehicleID,
		StartsAt:      in.StartsAt,
		EndsAt:        in.EndsAt,
		Notes:         in.Notes,
		EstimatedCost: in.EstimatedCost,
		Status:        entity.AppointmentScheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.appointmentRepo.Create(appointment); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appointment), nil
}

// List lista citas de la empresa actual.
func (uc *AppointmentUseCase) List(authz *session.Authorization, limit, offset int) ([]*dto.AppointmentResponse, error) {
	companyID, err := authz.CompanyID()
	if err != nil {
		return nil, err
	}
	list, err := uc.appointmentRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAppointmentResponse(a))
	}
	return out, nil
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:            a.ID,
		CompanyID:     a.CompanyID,
		VehicleID:     a.VehicleID,
		StartsAt:      a.StartsAt,
		EndsAt:        a.EndsAt,
		Notes:         a.Notes,
		EstimatedCost: a.EstimatedCost,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
