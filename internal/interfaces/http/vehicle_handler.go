package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
)

// VehicleHandler maneja las peticiones HTTP de vehículos (protegido).
type VehicleHandler struct {
	uc *usecase.VehicleUseCase
}

// NewVehicleHandler construye el handler.
func NewVehicleHandler(uc *usecase.VehicleUseCase) *VehicleHandler {
	return &VehicleHandler{uc: uc}
}

// Save POST /api/vehicles — crea o actualiza (con "id" en el body) un vehículo.
func (h *VehicleHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveVehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(GetAuthorization(c), in)
	if err != nil {
		return domainError(c, err)
	}
	status := fiber.StatusCreated
	if in.ID != "" {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(out)
}

// GetByID GET /api/vehicles/:id
func (h *VehicleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetAuthorization(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vehículo no encontrado"})
	}
	return c.JSON(out)
}

// List GET /api/vehicles?limit=20&offset=0
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	out, err := h.uc.List(GetAuthorization(c), limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
