package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

type fakeAppointmentRepo struct {
	byID map[string]*entity.Appointment
}

func newFakeAppointmentRepo(appointments ...*entity.Appointment) *fakeAppointmentRepo {
	r := &fakeAppointmentRepo{byID: map[string]*entity.Appointment{}}
	for _, a := range appointments {
		r.byID[a.ID] = a
	}
	return r
}

func (r *fakeAppointmentRepo) Create(a *entity.Appointment) error {
	r.byID[a.ID] = a
	return nil
}

func (r *fakeAppointmentRepo) GetByID(id string) (*entity.Appointment, error) {
	return r.byID[id], nil
}

func (r *fakeAppointmentRepo) ExistsOverlap(companyID, vehicleID string, startsAt, endsAt time.Time) (bool, error) {
	for _, a := range r.byID {
		if a.CompanyID != companyID || a.VehicleID != vehicleID || a.Status != entity.AppointmentScheduled {
			continue
		}
		if startsAt.Before(a.EndsAt) && a.StartsAt.Before(endsAt) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAppointmentRepo) ListByCompany(string, int, int) ([]*entity.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepo) Update(a *entity.Appointment) error {
	r.byID[a.ID] = a
	return nil
}

func (r *fakeAppointmentRepo) Delete(string) error { return nil }

func TestAppointmentSchedule_VehiculoDeOtraEmpresa(t *testing.T) {
	vehicles := newFakeVehicleRepo(
		&entity.Vehicle{ID: "v-b", CompanyID: empresaB, CustomerID: "c-b", Plate: "BBB222"},
	)
	uc := usecase.NewAppointmentUseCase(newFakeAppointmentRepo(), vehicles)
	authz := sesionEnEmpresa(t, empresaA)

	base := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
	_, err := uc.Schedule(authz, dto.ScheduleAppointmentRequest{
		VehicleID: "v-b",
		StartsAt:  base,
		EndsAt:    base.Add(time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAppointmentSchedule_RangoDeFechas(t *testing.T) {
	vehicles := newFakeVehicleRepo(
		&entity.Vehicle{ID: "v-a", CompanyID: empresaA, CustomerID: "c-1", Plate: "AAA111"},
	)
	uc := usecase.NewAppointmentUseCase(newFakeAppointmentRepo(), vehicles)
	authz := sesionEnEmpresa(t, empresaA)

	base := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
	_, err := uc.Schedule(authz, dto.ScheduleAppointmentRequest{
		VehicleID: "v-a",
		StartsAt:  base,
		EndsAt:    base, // duración cero
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAppointmentSchedule_DetectaSolape(t *testing.T) {
	vehicles := newFakeVehicleRepo(
		&entity.Vehicle{ID: "v-a", CompanyID: empresaA, CustomerID: "c-1", Plate: "AAA111"},
	)
	uc := usecase.NewAppointmentUseCase(newFakeAppointmentRepo(), vehicles)
	authz := sesionEnEmpresa(t, empresaA)

	base := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
	out, err := uc.Schedule(authz, dto.ScheduleAppointmentRequest{
		VehicleID:     "v-a",
		StartsAt:      base,
		EndsAt:        base.Add(2 * time.Hour),
		EstimatedCost: decimal.NewFromInt(150000),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentScheduled, out.Status)
	assert.Equal(t, empresaA, out.CompanyID)

	// Cita que se cruza con la anterior para el mismo vehículo.
	_, err = uc.Schedule(authz, dto.ScheduleAppointmentRequest{
		VehicleID: "v-a",
		StartsAt:  base.Add(time.Hour),
		EndsAt:    base.Add(3 * time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Cita contigua (empieza cuando termina la anterior): sin solape.
	_, err = uc.Schedule(authz, dto.ScheduleAppointmentRequest{
		VehicleID: "v-a",
		StartsAt:  base.Add(2 * time.Hour),
		EndsAt:    base.Add(3 * time.Hour),
	})
	assert.NoError(t, err)
}

func TestAppointmentSchedule_CostoNegativo(t *testing.T) {
	vehicles := newFakeVehicleRepo(
		&entity.Vehicle{ID: "v-a", CompanyID: empresaA, CustomerID: "c-1", Plate: "AAA111"},
	)
	uc := usecase.NewAppointmentUseCase(newFakeAppointmentRepo(), vehicles)
	authz := sesionEnEmpresa(t, empresaA)

	base := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
	_, err := uc.Schedule(authz, dto.ScheduleAppointmentRequest{
		VehicleID:     "v-a",
		StartsAt:      base,
		EndsAt:        base.Add(time.Hour),
		EstimatedCost: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
