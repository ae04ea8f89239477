package auth

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

// UseCase casos de uso de autenticación: login y registro de usuarios.
type UseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	verifier    PasswordVerifier
	hasher      PasswordHasher
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, verifier PasswordVerifier, hasher PasswordHasher) *UseCase {
	return &UseCase{userRepo: userRepo, companyRepo: companyRepo, verifier: verifier, hasher: hasher}
}

// NormalizeEmail recorta espacios y pasa a minúsculas. La contraseña nunca se normaliza.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login verifica credenciales y devuelve el principal autenticado.
//
// Es una función de decisión pura sobre los puertos: no toca la sesión; el
// caller alimenta session.Store con el resultado. Orden de chequeo, con corte
// en el primer fallo:
//  1. normalizar email;
//  2. lookup: email inexistente → ErrInvalidCredentials (indistinguible de
//     contraseña incorrecta, a propósito);
//  3. cuenta inactiva → ErrInactiveUser (sin verificar la contraseña);
//  4. contraseña incorrecta → ErrInvalidCredentials.
func (uc *UseCase) Login(email, password string) (*entity.User, error) {
	user, err := uc.userRepo.FindByEmail(NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, domain.ErrInactiveUser
	}
	if !uc.verifier.Matches(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// RegisterUser crea un usuario: normaliza el email, hashea la contraseña y
// persiste. Solo admin o super_admin registran usuarios; un admin solo dentro
// de su propia empresa y sin poder otorgar super_admin. Devuelve DuplicateError
// si el email ya existe en esa empresa y ErrNotFound si la empresa no existe.
func (uc *UseCase) RegisterUser(authz *session.Authorization, in dto.RegisterRequest) (*dto.UserResponse, error) {
	callerCompanyID, err := authz.CompanyID()
	if err != nil {
		return nil, err
	}
	if !authz.IsAdminOrSuperAdmin() {
		return nil, domain.ErrForbidden
	}
	email := NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.NewValidationError("email y password son requeridos")
	}
	role := entity.Role(in.Role)
	if in.Role == "" {
		role = entity.RoleEmployee
	}
	if !role.Valid() {
		return nil, domain.NewValidationError("rol inválido: " + in.Role)
	}
	companyID := in.CompanyID
	if !authz.HasRole(entity.RoleSuperAdmin) {
		// Un admin registra únicamente en su empresa y no escala privilegios.
		if companyID == "" {
			companyID = callerCompanyID
		}
		if companyID != callerCompanyID || role == entity.RoleSuperAdmin {
			return nil, domain.ErrForbidden
		}
	}
	if companyID == "" {
		return nil, domain.NewValidationError("company_id es requerido")
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound // empresa no existe
	}
	existing, err := uc.userRepo.GetByEmailAndCompany(email, companyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewDuplicateError("el email ya está registrado en esta empresa")
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = email
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}
