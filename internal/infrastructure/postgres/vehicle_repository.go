package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación del puerto VehicleRepository sobre PostgreSQL.
// La tabla lleva un índice único (company_id, plate): el chequeo consultivo del
// caso de uso puede perder una carrera y el INSERT/UPDATE la resuelve con 23505.
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

const vehicleColumns = `id, company_id, customer_id, plate, brand, model, year, attributes, created_at, updated_at`

// Save upsert de un vehículo: inserta o actualiza por ID y devuelve la fila persistida.
func (r *VehicleRepo) Save(vehicle *entity.Vehicle) (*entity.Vehicle, error) {
	query := `
		INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			customer_id = EXCLUDED.customer_id,
			plate       = EXCLUDED.plate,
			brand       = EXCLUDED.brand,
			model       = EXCLUDED.model,
			year        = EXCLUDED.year,
			attributes  = EXCLUDED.attributes,
			updated_at  = EXCLUDED.updated_at
		RETURNING ` + vehicleColumns
	saved, err := r.scanRow(r.q.QueryRow(context.Background(), query,
		vehicle.ID, vehicle.CompanyID, vehicle.CustomerID, vehicle.Plate, vehicle.Brand, vehicle.Model,
		vehicle.Year, vehicle.Attributes, vehicle.CreatedAt, vehicle.UpdatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewDuplicateError("ya existe un vehículo con la placa " + vehicle.Plate + " en su empresa")
		}
		return nil, fmt.Errorf("save vehicle: %w", err)
	}
	return saved, nil
}

// GetByID obtiene un vehículo por ID.
func (r *VehicleRepo) GetByID(id string) (*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	v, err := r.scanRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return v, nil
}

// ExistsPlateInCompany verifica unicidad de placa por empresa.
// excludeID vacío en creación; en updates descarta el propio vehículo.
func (r *VehicleRepo) ExistsPlateInCompany(companyID, plate, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM vehicles
			WHERE company_id = $1 AND plate = $2 AND ($3 = '' OR id <> $3)
		)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, companyID, plate, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists plate: %w", err)
	}
	return exists, nil
}

// ListByCompany lista vehículos por empresa con paginación.
func (r *VehicleRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehicle
	for rows.Next() {
		v, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Delete elimina un vehículo por ID.
func (r *VehicleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	return nil
}

func (r *VehicleRepo) scanRow(row pgx.Row) (*entity.Vehicle, error) {
	var v entity.Vehicle
	err := row.Scan(
		&v.ID, &v.CompanyID, &v.CustomerID, &v.Plate, &v.Brand, &v.Model, &v.Year, &v.Attributes,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
