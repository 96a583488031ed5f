package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/barberia-app/booking-api/internal/audit"
	"github.com/barberia-app/booking-api/internal/config"
	domain "github.com/barberia-app/booking-api/internal/domain/schedule"
	"github.com/barberia-app/booking-api/internal/handlers"
	infraRepo "github.com/barberia-app/booking-api/internal/infra/repository"
	"github.com/barberia-app/booking-api/internal/maintenance"
	"github.com/barberia-app/booking-api/internal/middleware"
	"github.com/barberia-app/booking-api/internal/models"
	"github.com/barberia-app/booking-api/internal/timezone"
	ucAppointment "github.com/barberia-app/booking-api/internal/usecase/appointment"
	ucAvailability "github.com/barberia-app/booking-api/internal/usecase/availability"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) *maintenance.Reconciler {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewScheduleGormRepository(db)
	clock := domain.NewClock(timezone.Location(cfg.Timezone))

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	reconciler := maintenance.NewReconciler(
		repo, repo, repo, clock,
		maintenance.Config{
			WindowDays:       cfg.MaintenanceWindowDays,
			ProtectCancelled: cfg.MaintenanceProtectCancelled,
		},
	)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(repo, repo, clock, auditDispatcher)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(repo, clock, auditDispatcher)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(repo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(repo)

	setAvailabilityUC := ucAvailability.NewSetAvailability(repo, clock, auditDispatcher)
	queryAvailabilityUC := ucAvailability.NewQueryAvailability(repo)
	getSlotsUC := ucAvailability.NewGetSlots(repo, repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	userHandler := handlers.NewUserHandler(db)

	availabilityHandler := handlers.NewAvailabilityHandler(
		setAvailabilityUC,
		queryAvailabilityUC,
		getSlotsUC,
		cfg,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		updateAppointmentUC,
		listAppointmentsUC,
		cfg,
	)

	maintenanceHandler := handlers.NewMaintenanceHandler(reconciler, cfg)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute))
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/barbers", userHandler.ListBarbers)
		api.GET("/weekly-availability", availabilityHandler.Weekly)

		cron := api.Group("/cron")
		{
			cron.GET("/daily-maintenance", maintenanceHandler.DailyMaintenance)
			cron.GET("/status", maintenanceHandler.Status)
		}

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.GET("/available-slots", availabilityHandler.SlotsForDate)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListMine)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// BARBER
			// ------------------------------
			barber := secured.Group("/")
			barber.Use(middleware.RequireRole(models.RoleBarber))
			{
				barber.POST("/availability", availabilityHandler.Set)
				barber.GET("/availability", availabilityHandler.Query)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/users", userHandler.List)
				admin.GET("/users/:id", userHandler.Get)
				admin.PATCH("/users/:id", userHandler.Update)
				admin.DELETE("/users/:id", userHandler.Delete)

				admin.POST("/cron/manual-maintenance", maintenanceHandler.ManualMaintenance)
			}
		}
	}

	return reconciler
}
