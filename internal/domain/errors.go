package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInactiveUser       = errors.New("usuario inactivo")
	ErrNoActiveSession    = errors.New("no hay sesión activa")
	ErrValidation         = errors.New("validación fallida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrForbidden          = errors.New("acceso denegado")
)

// ValidationError falla de validación con mensaje legible para el usuario final.
// Se clasifica con errors.Is(err, ErrValidation).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError construye una ValidationError.
func NewValidationError(msg string) error { return &ValidationError{Message: msg} }

// DuplicateError violación de unicidad con mensaje legible.
// Se clasifica con errors.Is(err, ErrDuplicate).
type DuplicateError struct {
	Message string
}

func (e *DuplicateError) Error() string { return e.Message }

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// NewDuplicateError construye una DuplicateError.
func NewDuplicateError(msg string) error { return &DuplicateError{Message: msg} }
