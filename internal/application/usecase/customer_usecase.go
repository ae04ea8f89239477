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

// CustomerUseCase clientes del taller. Mismo esquema de escritura que Vehicle:
// empresa de la sesión → requeridos → unicidad por empresa → persistir.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Save crea o actualiza un cliente de la empresa actual.
// El NIT/cédula es único por empresa, excluyendo el propio ID en updates.
func (uc *CustomerUseCase) Save(authz *session.Authorization, in dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	companyID, err := authz.CompanyID()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.TaxID) == "" {
		return nil, domain.NewValidationError("name y tax_id son requeridos")
	}
	taxID := strings.TrimSpace(in.TaxID)
	// Referencias cruzadas antes que unicidad, como en Vehicle.
	var current *entity.Customer
	if in.ID != "" {
		// Actualización: el cliente debe existir y ser de la empresa actual.
		current, err = uc.repo.GetByID(in.ID)
		if err != nil {
			return nil, err
		}
		if current == nil || current.CompanyID != companyID {
			return nil, domain.NewValidationError("el cliente no pertenece a su empresa")
		}
	}
	existing, err := uc.repo.GetByCompanyAndTaxID(companyID, taxID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != in.ID {
		return nil, domain.NewDuplicateError("ya existe un cliente con el NIT/cédula " + taxID)
	}
	now := time.Now()
	if current != nil {
		current.Name = in.Name
		current.TaxID = taxID
		current.Email = in.Email
		current.Phone = in.Phone
		current.UpdatedAt = now
		if err := uc.repo.Update(current); err != nil {
			return nil, err
		}
		return toCustomerResponse(current), nil
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		TaxID:     taxID,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes de la empresa actual.
func (uc *CustomerUseCase) List(authz *session.Authorization, limit, offset int) ([]*dto.CustomerResponse, error) {
	companyID, err := authz.CompanyID()
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
