package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo implementación del puerto AppointmentRepository sobre PostgreSQL.
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

const appointmentColumns = `id, company_id, vehicle_id, starts_at, ends_at, notes, estimated_cost, status, created_at, updated_at`

// Create persiste una nueva cita.
func (r *AppointmentRepo) Create(a *entity.Appointment) error {
	query := `
		INSERT INTO appointments (` + appointmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.CompanyID, a.VehicleID, a.StartsAt, a.EndsAt, a.Notes, a.EstimatedCost, a.Status,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// GetByID obtiene una cita por ID.
func (r *AppointmentRepo) GetByID(id string) (*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	var a entity.Appointment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.CompanyID, &a.VehicleID, &a.StartsAt, &a.EndsAt, &a.Notes, &a.EstimatedCost, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return &a, nil
}

// ExistsOverlap verifica si el vehículo tiene una cita agendada que se cruza
// con [startsAt, endsAt). Citas canceladas o terminadas no cuentan.
func (r *AppointmentRepo) ExistsOverlap(companyID, vehicleID string, startsAt, endsAt time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE company_id = $1 AND vehicle_id = $2 AND status = $3
			  AND starts_at < $5 AND $4 < ends_at
		)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, companyID, vehicleID, entity.AppointmentScheduled, startsAt, endsAt).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists overlap: %w", err)
	}
	return exists, nil
}

// ListByCompany lista citas por empresa con paginación.
func (r *AppointmentRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments WHERE company_id = $1 ORDER BY starts_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Appointment
	for rows.Next() {
		var a entity.Appointment
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.VehicleID, &a.StartsAt, &a.EndsAt, &a.Notes, &a.EstimatedCost, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza una cita (estado, notas, horario).
func (r *AppointmentRepo) Update(a *entity.Appointment) error {
	query := `
		UPDATE appointments SET starts_at = $2, ends_at = $3, notes = $4, estimated_cost = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.StartsAt, a.EndsAt, a.Notes, a.EstimatedCost, a.Status, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

// Delete elimina una cita por ID.
func (r *AppointmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}
