// Package server assembles services, handlers and middleware into the HTTP router.
package server

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"frota/internal/config"
	"frota/internal/events"
	"frota/internal/handlers"
	"frota/internal/middleware"
	"frota/internal/services"
)

// Services is the service graph behind the API.
type Services struct {
	Users            services.UserServicer
	Audit            services.AuditServicer
	RecurringExpense services.RecurringExpenseServicer
	Payables         services.AccountsPayableServicer
	Costs            services.CostServicer
	Salaries         services.SalaryServicer
	Finance          services.FinanceServicer
	Vehicles         services.VehicleServicer
	Customers        services.CustomerServicer
	Drivers          services.DriverServicer
	FleetEvents      services.FleetEventServicer
	Notifications    services.NotificationServicer
	Changes          events.Subscriber

	// Ping reports database health. Nil means always healthy.
	Ping func() error
}

// NewServices wires every service to db and publishes their writes on bus.
func NewServices(db *gorm.DB, bus events.Bus) *Services {
	return &Services{
		Users:            services.NewUserService(db),
		Audit:            services.NewAuditService(db),
		RecurringExpense: services.NewRecurringExpenseService(db, bus),
		Payables:         services.NewAccountsPayableService(db, bus),
		Costs:            services.NewCostService(db, bus),
		Salaries:         services.NewSalaryService(db, bus),
		Finance:          services.NewFinanceService(db, bus),
		Vehicles:         services.NewVehicleService(db, bus),
		Customers:        services.NewCustomerService(db, bus),
		Drivers:          services.NewDriverService(db, bus),
		FleetEvents:      services.NewFleetEventService(db, bus),
		Notifications:    services.NewNotificationService(db, bus),
		Changes:          bus,
	}
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(cfg *config.Config, svc *Services) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Users, svc.Audit)
	recurringHandler := handlers.NewRecurringExpenseHandler(svc.RecurringExpense, svc.Audit)
	payableHandler := handlers.NewAccountsPayableHandler(svc.Payables, svc.Audit)
	costHandler := handlers.NewCostHandler(svc.Costs, svc.Audit)
	salaryHandler := handlers.NewSalaryHandler(svc.Salaries, svc.Audit)
	financeHandler := handlers.NewFinanceHandler(svc.Finance, svc.Audit)
	vehicleHandler := handlers.NewVehicleHandler(svc.Vehicles, svc.Audit)
	customerHandler := handlers.NewCustomerHandler(svc.Customers, svc.Audit)
	driverHandler := handlers.NewDriverHandler(svc.Drivers, svc.Audit)
	fleetHandler := handlers.NewFleetEventHandler(svc.FleetEvents, svc.Audit)
	notificationHandler := handlers.NewNotificationHandler(svc.Notifications)
	changesHandler := handlers.NewChangesHandler(svc.Changes)
	auditHandler := handlers.NewAuditHandler(svc.Audit)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())
	router.Use(cors(cfg.CORSOrigins))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/api/health", func(c *gin.Context) {
		if svc.Ping != nil {
			if err := svc.Ping(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Notification pipeline, authenticated by API key
	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(cfg.PipelineAPIKey))
	pipeline.GET("/notifications/pending", notificationHandler.GetPending)
	pipeline.POST("/notifications/:id/sent", notificationHandler.MarkSent)
	pipeline.POST("/notifications/:id/failed", notificationHandler.MarkFailed)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/profile", authHandler.GetProfile)
	protected.GET("/changes", changesHandler.Stream)
	protected.GET("/audit-logs", auditHandler.GetAuditLogs)

	recurring := protected.Group("/recurring-expenses")
	recurring.POST("", recurringHandler.CreateRecurringExpense)
	recurring.GET("", recurringHandler.GetRecurringExpenses)
	recurring.POST("/generate", recurringHandler.GenerateRecurringExpenses)
	recurring.GET("/:id", recurringHandler.GetRecurringExpense)
	recurring.PUT("/:id", recurringHandler.UpdateRecurringExpense)
	recurring.PATCH("/:id/active", recurringHandler.SetRecurringExpenseActive)
	recurring.DELETE("/:id", recurringHandler.DeleteRecurringExpense)

	payables := protected.Group("/payables")
	payables.POST("", payableHandler.CreatePayable)
	payables.GET("", payableHandler.GetPayables)
	payables.GET("/:id", payableHandler.GetPayable)
	payables.POST("/:id/authorize", payableHandler.AuthorizePayable)
	payables.POST("/:id/pay", payableHandler.PayPayable)

	costs := protected.Group("/costs")
	costs.POST("", costHandler.CreateCost)
	costs.GET("", costHandler.GetCosts)
	costs.GET("/totals", costHandler.GetCostTotals)
	costs.GET("/statistics", costHandler.GetCostStatistics)
	costs.GET("/:id", costHandler.GetCost)
	costs.PUT("/:id", costHandler.UpdateCost)
	costs.DELETE("/:id", costHandler.DeleteCost)
	costs.POST("/:id/pay", costHandler.PayCost)
	costs.PATCH("/:id/estimate", costHandler.UpdateCostEstimate)

	salaries := protected.Group("/salaries")
	salaries.POST("", salaryHandler.CreateSalary)
	salaries.GET("", salaryHandler.GetSalaries)
	salaries.POST("/generate", salaryHandler.GenerateSalaries)
	salaries.GET("/:id", salaryHandler.GetSalary)
	salaries.POST("/:id/pay", salaryHandler.PaySalary)

	finance := protected.Group("/finance")
	finance.GET("/summary", financeHandler.GetSummary)
	finance.POST("/sync-costs", financeHandler.SyncCosts)

	vehicles := protected.Group("/vehicles")
	vehicles.POST("", vehicleHandler.CreateVehicle)
	vehicles.GET("", vehicleHandler.GetVehicles)
	vehicles.GET("/:id", vehicleHandler.GetVehicle)
	vehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
	vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
	vehicles.GET("/:id/history", vehicleHandler.GetVehicleHistory)

	customers := protected.Group("/customers")
	customers.POST("", customerHandler.CreateCustomer)
	customers.GET("", customerHandler.GetCustomers)
	customers.GET("/:id", customerHandler.GetCustomer)
	customers.PUT("/:id", customerHandler.UpdateCustomer)
	customers.DELETE("/:id", customerHandler.DeleteCustomer)
	customers.GET("/:id/history", customerHandler.GetCustomerHistory)

	drivers := protected.Group("/drivers")
	drivers.POST("", driverHandler.CreateDriver)
	drivers.GET("", driverHandler.GetDrivers)
	drivers.GET("/:id", driverHandler.GetDriver)
	drivers.PUT("/:id", driverHandler.UpdateDriver)
	drivers.DELETE("/:id", driverHandler.DeleteDriver)
	drivers.POST("/:id/assign", driverHandler.AssignVehicle)
	drivers.POST("/:id/unassign", driverHandler.UnassignVehicle)
	protected.GET("/assignments", driverHandler.GetAssignments)

	fines := protected.Group("/fines")
	fines.POST("", fleetHandler.CreateFine)
	fines.GET("", fleetHandler.GetFines)
	fines.PATCH("/:id/status", fleetHandler.UpdateFineStatus)

	damages := protected.Group("/damages")
	damages.POST("", fleetHandler.CreateDamage)
	damages.GET("", fleetHandler.GetDamages)
	damages.PATCH("/:id/status", fleetHandler.UpdateDamageStatus)

	notes := protected.Group("/service-notes")
	notes.POST("", fleetHandler.CreateServiceNote)
	notes.GET("", fleetHandler.GetServiceNotes)

	return router
}

// cors allows the configured browser origins. A "*" entry allows any origin.
func cors(origins []string) gin.HandlerFunc {
	allowAll := slices.Contains(origins, "*")
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowAll || slices.Contains(origins, origin)) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
			c.Writer.Header().Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
