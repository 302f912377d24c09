package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/protetiq/lab-orders-api/internal/config"
	"github.com/protetiq/lab-orders-api/internal/handlers"
	infraRepo "github.com/protetiq/lab-orders-api/internal/infra/repository"
	"github.com/protetiq/lab-orders-api/internal/middleware"
	"github.com/protetiq/lab-orders-api/internal/timezone"
	ucOrder "github.com/protetiq/lab-orders-api/internal/usecase/order"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	loc := timezone.Location(cfg.LabTimezone)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	orderRepo := infraRepo.NewOrderGormRepository(db)

	// ======================================================
	// USE CASES — ORDENS (KPI + AGENDA)
	// ======================================================
	kpiSummaryUC := ucOrder.NewKPISummary(orderRepo, loc)
	agendaUC := ucOrder.NewAgendaForDate(orderRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(db)
	dentistHandler := handlers.NewDentistHandler(db)
	patientHandler := handlers.NewPatientHandler(db, loc)
	pieceTypeHandler := handlers.NewPieceTypeHandler(db)
	orderHandler := handlers.NewOrderHandler(db, loc)

	kpiHandler := handlers.NewKPIHandler(kpiSummaryUC)
	agendaHandler := handlers.NewAgendaHandler(agendaUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		clients := api.Group("/clients")
		{
			clients.GET("", clientHandler.List)
			clients.GET("/:id", clientHandler.Get)
			clients.POST("", clientHandler.Create)
			clients.PATCH("/:id", clientHandler.Update)
			clients.DELETE("/:id", clientHandler.Delete)
		}

		dentists := api.Group("/dentists")
		{
			dentists.GET("", dentistHandler.List)
			dentists.GET("/:id", dentistHandler.Get)
			dentists.POST("", dentistHandler.Create)
			dentists.PATCH("/:id", dentistHandler.Update)
			dentists.DELETE("/:id", dentistHandler.Delete)
		}

		patients := api.Group("/patients")
		{
			patients.GET("", patientHandler.List)
			patients.GET("/:id", patientHandler.Get)
			patients.POST("", patientHandler.Create)
			patients.PATCH("/:id", patientHandler.Update)
			patients.DELETE("/:id", patientHandler.Delete)
		}

		pieceTypes := api.Group("/piece-types")
		{
			pieceTypes.GET("", pieceTypeHandler.List)
			pieceTypes.GET("/:id", pieceTypeHandler.Get)
			pieceTypes.POST("", pieceTypeHandler.Create)
			pieceTypes.PATCH("/:id", pieceTypeHandler.Update)
			pieceTypes.DELETE("/:id", pieceTypeHandler.Delete)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", orderHandler.List)
			orders.GET("/:id", orderHandler.Get)
			orders.POST("", orderHandler.Create)
			orders.PATCH("/:id", orderHandler.Update)
			orders.DELETE("/:id", orderHandler.Delete)
		}

		api.GET("/kpis/orders", kpiHandler.OrderSummary)
		api.GET("/agenda", agendaHandler.ListForDate)
	}
}
