package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Save POST /api/customers — crea o actualiza (con "id" en el body) un cliente.
func (h *CustomerHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveCustomerRequest
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

// List GET /api/customers?limit=20&offset=0
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	out, err := h.uc.List(GetAuthorization(c), limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
