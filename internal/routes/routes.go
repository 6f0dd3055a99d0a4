package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	ucDoctor "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/doctor"
)

// RegisterRoutes wires repositories, use cases and handlers onto r. The
// returned dispatcher must be closed on shutdown to flush pending audit
// events.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
) *audit.Dispatcher {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(appointmentRepo, auditDispatcher, log)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)
	listUC := ucAppointment.NewListAppointments(appointmentRepo)
	getUC := ucAppointment.NewGetAppointment(appointmentRepo)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher)
	completeUC := ucAppointment.NewCompleteAppointment(appointmentRepo, auditDispatcher)

	getShiftsUC := ucDoctor.NewGetShifts(appointmentRepo)
	updateShiftsUC := ucDoctor.NewUpdateShifts(appointmentRepo, auditDispatcher)
	assignmentUC := ucDoctor.NewServiceAssignment(appointmentRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg.JWTSecret)
	meHandler := handlers.NewMeHandler(db)
	clinicHandler := handlers.NewClinicHandler(db, auditDispatcher, cfg.JWTSecret)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		availabilityUC,
		listUC,
		getUC,
		cancelUC,
		completeUC,
	)

	doctorHandler := handlers.NewDoctorHandler(
		getShiftsUC,
		updateShiftsUC,
		assignmentUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.POST("/clinics", clinicHandler.Register)
		api.GET("/clinics", clinicHandler.List)

		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)

		api.GET("/availability", appointmentHandler.Availability)
		api.GET("/doctors/:id/shifts", doctorHandler.GetShifts)

		// ------------------------------
		// SECURED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/clinics/:id", clinicHandler.Get)
			secured.PATCH("/clinics/:id", clinicHandler.Update)
			secured.POST("/clinics/:id/doctors", clinicHandler.AddDoctor)

			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id/doctors/:doctorId", doctorHandler.AssignService)
			secured.DELETE("/services/:id/doctors/:doctorId", doctorHandler.UnassignService)

			secured.PUT("/doctors/:id/shifts", doctorHandler.UpdateShifts)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments",
				middleware.RateLimit(cfg.BookingRatePerMin, log),
				appointmentHandler.Book,
			)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return auditDispatcher
}
