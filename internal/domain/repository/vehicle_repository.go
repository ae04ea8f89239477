package repository

import "github.com/jhoicas/Taller-api/internal/domain/entity"

// VehicleRepository define el puerto de persistencia para Vehicle.
//
// ExistsPlateInCompany es el chequeo de unicidad de placa por empresa;
// excludeID descarta el propio vehículo en actualizaciones (vacío en creación).
// El chequeo es consultivo: la tabla mantiene además un índice único
// (company_id, plate) como garantía final contra escrituras concurrentes.
type VehicleRepository interface {
	Save(vehicle *entity.Vehicle) (*entity.Vehicle, error)
	GetByID(id string) (*entity.Vehicle, error)
	ExistsPlateInCompany(companyID, plate, excludeID string) (bool, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Vehicle, error)
	Delete(id string) error
}
