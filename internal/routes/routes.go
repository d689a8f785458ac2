package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/beautybook/beautybook-api/internal/audit"
	"github.com/beautybook/beautybook-api/internal/cache"
	"github.com/beautybook/beautybook-api/internal/config"
	"github.com/beautybook/beautybook-api/internal/handlers"
	infraRepo "github.com/beautybook/beautybook-api/internal/infra/repository"
	"github.com/beautybook/beautybook-api/internal/middleware"
	"github.com/beautybook/beautybook-api/internal/payments"
	ucAppointment "github.com/beautybook/beautybook-api/internal/usecase/appointment"
	ucReceivable "github.com/beautybook/beautybook-api/internal/usecase/receivable"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, store *cache.Cache, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	receivableRepo := infraRepo.NewReceivableGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var mercadopago *payments.MercadoPago
	if cfg.MPAccessToken != "" {
		mp, err := payments.NewMercadoPago(cfg.MPAccessToken)
		if err != nil {
			log.Printf("mercadopago disabled: %v", err)
		} else {
			mercadopago = mp
		}
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createAccountUC := ucReceivable.NewCreateAccount(
		receivableRepo,
		auditDispatcher,
	)

	markPaidUC := ucReceivable.NewMarkInstallmentPaid(
		receivableRepo,
		auditDispatcher,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		createAccountUC,
		auditDispatcher,
	)

	changeStatusUC := ucAppointment.NewChangeStatus(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	clientHandler := handlers.NewClientHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	productHandler := handlers.NewProductHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		store,
		createAppointmentUC,
		changeStatusUC,
	)

	receivableHandler := handlers.NewReceivableHandler(
		db,
		receivableRepo,
		createAccountUC,
		markPaidUC,
		mercadopago,
	)

	reportHandler := handlers.NewReportHandler(db, store)
	settingsHandler := handlers.NewSettingsHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.PATCH("/me/clients/:id", clientHandler.Update)
			secured.DELETE("/me/clients/:id", clientHandler.Delete)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)

			secured.GET("/me/products", productHandler.List)
			secured.POST("/me/products", productHandler.Create)
			secured.PATCH("/me/products/:id", productHandler.Update)
			secured.DELETE("/me/products/:id", productHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/me/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// ACCOUNTS RECEIVABLE
			// ------------------------------
			secured.GET("/me/receivables", receivableHandler.List)
			secured.POST("/me/receivables", receivableHandler.Create)
			secured.PATCH("/me/receivables/:id", receivableHandler.Update)
			secured.DELETE("/me/receivables/:id", receivableHandler.Delete)
			secured.PATCH("/me/receivables/:id/installments/:number/pay", receivableHandler.MarkInstallmentPaid)
			secured.POST("/me/receivables/:id/installments/:number/payment-link", receivableHandler.InstallmentPaymentLink)

			// ------------------------------
			// REPORTS / SETTINGS / AUDIT
			// ------------------------------
			secured.GET("/me/reports/dashboard", reportHandler.Dashboard)
			secured.GET("/me/reports/receivables", reportHandler.ReceivablesSummary)

			secured.GET("/me/settings", settingsHandler.Get)
			secured.PUT("/me/settings", settingsHandler.Put)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
