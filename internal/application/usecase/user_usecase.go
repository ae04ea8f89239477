package usecase

import (
	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/session"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// UserUseCase consultas de usuarios de la empresa actual.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// ListByCompany lista los usuarios de la empresa actual. Requiere admin o super_admin.
func (uc *UserUseCase) ListByCompany(authz *session.Authorization, limit, offset int) ([]*dto.UserResponse, error) {
	companyID, err := authz.CompanyID()
	if err != nil {
		return nil, err
	}
	if !authz.IsAdminOrSuperAdmin() {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.ToUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario de la empresa actual.
func (uc *UserUseCase) GetByID(authz *session.Authorization, id string) (*dto.UserResponse, error) {
	companyID, err := authz.CompanyID()
	if err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != companyID {
		return nil, nil
	}
	return dto.ToUserResponse(user), nil
}
