package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/session"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// VehicleUseCase registro y actualización de vehículos con aislamiento por empresa.
type VehicleUseCase struct {
	vehicleRepo  repository.VehicleRepository
	customerRepo repository.CustomerRepository
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(vehicleRepo repository.VehicleRepository, customerRepo repository.CustomerRepository) *VehicleUseCase {
	return &VehicleUseCase{vehicleRepo: vehicleRepo, customerRepo: customerRepo}
}

// NormalizePlate recorta espacios y pasa la placa a mayúsculas.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// Save valida y persiste un vehículo. La empresa destino se toma SIEMPRE de la
// sesión (authz), nunca del request. Orden de reglas, gana el primer fallo y no
// hay persistencia parcial:
//  1. campos requeridos (cliente y placa);
//  2. el cliente existe y pertenece a la empresa actual (aislamiento de tenant);
//  3. normalización de placa;
//  4. unicidad de placa dentro de la empresa, excluyendo el propio ID en updates;
//  5. año, si viene, en [1950, 2100].
//
// El chequeo de unicidad es consultivo frente a escrituras concurrentes: el
// índice único (company_id, plate) en la tabla resuelve la carrera.
func (uc *VehicleUseCase) Save(authz *session.Authorization, in dto.SaveVehicleRequest) (*dto.VehicleResponse, error) {
	companyID, err := authz.CompanyID()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.CustomerID) == "" || strings.TrimSpace(in.Plate) == "" {
		return nil, domain.NewValidationError("customer_id y plate son requeridos")
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.CompanyID != companyID {
		return nil, domain.NewValidationError("el cliente no pertenece a su empresa")
	}
	if in.ID != "" {
		// Actualización: el vehículo destino también debe ser de la empresa actual.
		current, err := uc.vehicleRepo.GetByID(in.ID)
		if err != nil {
			return nil, err
		}
		if current == nil || current.CompanyID != companyID {
			return nil, domain.NewValidationError("el vehículo no pertenece a su empresa")
		}
	}
	plate := NormalizePlate(in.Plate)
	exists, err := uc.vehicleRepo.ExistsPlateInCompany(companyID, plate, in.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicateError("ya existe un vehículo con la placa " + plate + " en su empresa")
	}
	if in.Year != nil && (*in.Year < entity.VehicleYearMin || *in.Year > entity.VehicleYearMax) {
		return nil, domain.NewValidationError(fmt.Sprintf("el año debe estar entre %d y %d", entity.VehicleYearMin, entity.VehicleYearMax))
	}
	now := time.Now()
	vehicle := &entity.Vehicle{
		ID:         in.ID,
		CompanyID:  companyID,
		CustomerID: in.CustomerID,
		Plate:      plate,
		Brand:      in.Brand,
		Model:      in.Model,
		Year:       in.Year,
		Attributes: in.Attributes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if vehicle.ID == "" {
		vehicle.ID = uuid.New().String()
	}
	saved, err := uc.vehicleRepo.Save(vehicle)
	if err != nil {
		return nil, err
	}
	return toVehicleResponse(saved), nil
}

// GetByID obtiene un vehículo por ID, solo si pertenece a la empresa actual.
func (uc *VehicleUseCase) GetByID(authz *session.Authorization, id string) (*dto.VehicleResponse, error) {
	companyID, err := authz.CompanyID()
	if err != nil {
		return nil, err
	}
	vehicle, err := uc.vehicleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil || vehicle.CompanyID != companyID {
		return nil, nil
	}
	return toVehicleResponse(vehicle), nil
}

// List lista los vehículos de la empresa actual con paginación.
func (uc *VehicleUseCase) List(authz *session.Authorization, limit, offset int) (*dto.VehicleListResponse, error) {
	companyID, err := authz.CompanyID()
	if err != nil {
		return nil, err
	}
	list, err := uc.vehicleRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVehicleResponse(v))
	}
	return &dto.VehicleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toVehicleResponse(v *entity.Vehicle) *dto.VehicleResponse {
	if v == nil {
		return nil
	}
	return &dto.VehicleResponse{
		ID:         v.ID,
		CompanyID:  v.CompanyID,
		CustomerID: v.CustomerID,
		Plate:      v.Plate,
		Brand:      v.Brand,
		Model:      v.Model,
		Year:       v.Year,
		Attributes: v.Attributes,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}
