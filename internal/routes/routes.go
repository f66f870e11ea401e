package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/loyalty"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/payments"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucClient "github.com/BruksfildServices01/salon-scheduler/internal/usecase/client"
	ucPackage "github.com/BruksfildServices01/salon-scheduler/internal/usecase/servicepackage"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	salonRepo := infraRepo.NewSalonGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	serviceCatalog := cfg.Catalog()
	bookingRules := cfg.BookingRules()
	thresholds := loyalty.DefaultThresholds()

	var availCache cache.AvailabilityCache = cache.Noop{}
	if cfg.RedisEnabled {
		redisCache, err := cache.NewRedisAvailability(cfg.RedisURL)
		if err != nil {
			log.Println("redis unavailable, availability cache disabled:", err)
		} else {
			availCache = redisCache
		}
	}

	var gateway payments.Gateway
	if cfg.MPAccessToken != "" {
		mp, err := payments.NewMercadoPago(cfg.MPAccessToken)
		if err != nil {
			log.Println("mercado pago unavailable, checkout disabled:", err)
		} else {
			gateway = mp
		}
	}

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		salonRepo,
		auditDispatcher,
		availCache,
		serviceCatalog,
		bookingRules,
		cfg.Timezone,
		cfg.TxTimeout(),
	)

	completeServiceUC := ucAppointment.NewCompleteService(
		salonRepo,
		auditDispatcher,
		availCache,
		serviceCatalog,
		thresholds,
		cfg.Timezone,
		cfg.TxTimeout(),
	)

	transitionAppointmentUC := ucAppointment.NewTransitionAppointment(
		salonRepo,
		auditDispatcher,
		availCache,
		completeServiceUC,
		cfg.Timezone,
		cfg.TxTimeout(),
	)

	rescheduleUC := ucAppointment.NewReschedule(
		salonRepo,
		auditDispatcher,
		availCache,
		serviceCatalog,
		bookingRules,
		cfg.Timezone,
		cfg.TxTimeout(),
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		salonRepo,
		cfg.Timezone,
	)

	availabilityUC := ucAppointment.NewGetAvailability(
		salonRepo,
		availCache,
		serviceCatalog,
		bookingRules,
	)

	// ======================================================
	// 🧠 USE CASES — PACKAGES E CLIENTES
	// ======================================================
	purchasePackageUC := ucPackage.NewPurchase(
		salonRepo,
		auditDispatcher,
		gateway,
		serviceCatalog,
		cfg.PurchaseRules(),
		cfg.Timezone,
	)

	loyaltySummaryUC := ucClient.NewGetLoyaltySummary(
		salonRepo,
		thresholds,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		transitionAppointmentUC,
		completeServiceUC,
		rescheduleUC,
		listAppointmentsByDateUC,
		availabilityUC,
		cfg.Timezone,
	)

	packageHandler := handlers.NewPackageHandler(db, purchasePackageUC)
	clientHandler := handlers.NewClientHandler(db, salonRepo, loyaltySummaryUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.GET("/me/clients/:id/loyalty", clientHandler.LoyaltySummary)
			secured.GET("/me/clients/:id/history", clientHandler.History)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/availability", appointmentHandler.Availability)
			secured.PATCH("/me/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/reschedule", appointmentHandler.Reschedule)

			// ------------------------------
			// PACKAGES
			// ------------------------------
			secured.POST("/me/packages", packageHandler.Purchase)
			secured.GET("/me/clients/:id/packages", packageHandler.ListByClient)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
