package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-api/internal/application/auth"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	CompanyUC     *usecase.CompanyUseCase
	CustomerUC    *usecase.CustomerUseCase
	VehicleUC     *usecase.VehicleUseCase
	AppointmentUC *usecase.AppointmentUseCase
	UserUC        *usecase.UserUseCase
	CompanyRepo   repository.CompanyRepository
	JWT           JWTConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.CompanyRepo, deps.JWT)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWT.Secret))

	protected.Get("/me", authHandler.Me)

	// Registro de usuarios: solo admin o super_admin de una sesión activa.
	protected.Post("/auth/register", RequireAdminOrSuperAdmin(), authHandler.Register)

	// Companies: solo super_admin administra tenants
	companies := protected.Group("/companies", RequireRole(entity.RoleSuperAdmin))
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Patch("/:id", companyHandler.Update)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Save)
	customers.Get("/", customerHandler.List)

	// Vehicles
	vehicles := protected.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	vehicles.Post("/", vehicleHandler.Save)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Get("/:id", vehicleHandler.GetByID)

	// Appointments
	appointments := protected.Group("/appointments")
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	appointments.Post("/", appointmentHandler.Schedule)
	appointments.Get("/", appointmentHandler.List)

	// Users de la empresa (admin o super_admin)
	users := protected.Group("/users", RequireAdminOrSuperAdmin())
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
}
