package repository

import "github.com/jhoicas/Taller-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// FindByEmail es el lookup del pipeline de login: el email llega ya normalizado.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndCompany(email, companyID string) (*entity.User, error)
	Update(user *entity.User) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.User, error)
	Delete(id string) error
}
