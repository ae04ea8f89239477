package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
)

// AppointmentHandler maneja las peticiones HTTP de citas (protegido).
type AppointmentHandler struct {
	uc *usecase.AppointmentUseCase
}

// NewAppointmentHandler construye el handler.
func NewAppointmentHandler(uc *usecase.AppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// Schedule POST /api/appointments
func (h *AppointmentHandler) Schedule(c *fiber.Ctx) error {
	var in dto.ScheduleAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Schedule(GetAuthorization(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/appointments?limit=20&offset=0
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	out, err := h.uc.List(GetAuthorization(c), limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
