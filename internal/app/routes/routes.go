package routes

import (
	"boardinghouse-http-service/internal/app/controllers"
	"boardinghouse-http-service/internal/app/middleware"
	"boardinghouse-http-service/internal/domain/services"
	"boardinghouse-http-service/internal/domain/services/container"
	"boardinghouse-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// Force UTF-8 JSON responses
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})

	serviceContainer := container.NewServiceContainer(db, cfg)

	redisService := serviceContainer.GetService("redis").(services.InterfaceRedisService)
	middleware.InitAuthMiddleware(cfg, redisService)

	// Swagger documentation route. Serving a spec needs the generated
	// docs package: run `swag init -g cmd/server/main.go` and blank-import
	// the docs package here.
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")

	registerPublicRoutes(api, container)
	registerAdminRoutes(api, container)
	registerTenantRoutes(api, container)
}

// registerPublicRoutes registers routes that need no session
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// Health check routes
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "health"))

	// Auth routes; login is rate limited per IP to slow brute force
	authGroup := api.Group("/auth")
	authGroup.POST("/login", middleware.RateLimitByIP(5, 10), controllers.HandleJWTFunc(container, "login"))
	authGroup.POST("/refresh", controllers.HandleJWTFunc(container, "refresh"))
	authGroup.POST("/logout", controllers.HandleJWTFunc(container, "logout"))
}

// registerAdminRoutes registers the administrator management surface
func registerAdminRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	admin := api.Group("/admin")
	admin.Use(middleware.AuthenticateAdmin())
	admin.Use(middleware.RateLimitByIP(30, 50))

	// Room routes
	roomGroup := admin.Group("/rooms")
	{
		roomGroup.GET("", controllers.HandleRoomFunc(container, "getRooms"))
		roomGroup.POST("", controllers.HandleRoomFunc(container, "createRoom"))
		roomGroup.PUT("/:id", controllers.HandleRoomFunc(container, "updateRoom"))
		roomGroup.POST("/:id/archive", controllers.HandleRoomFunc(container, "archiveRoom"))
		roomGroup.DELETE("/:id", controllers.HandleRoomFunc(container, "deleteRoom"))
	}

	// Tenant roster routes
	admin.GET("/tenants", controllers.HandleTenantFunc(container, "getRegistration"))
	admin.POST("/tenants", controllers.HandleTenantFunc(container, "registerTenant"))

	// Payment routes
	paymentGroup := admin.Group("/payments")
	paymentGroup.GET("", controllers.HandlePaymentFunc(container, "getPayments"))
	paymentGroup.POST("", controllers.HandlePaymentFunc(container, "recordPayment"))

	// Maintenance request routes
	requestGroup := admin.Group("/requests")
	requestGroup.GET("", controllers.HandleRequestFunc(container, "getRequests"))
	requestGroup.PUT("/:id", controllers.HandleRequestFunc(container, "updateRequest"))

	// Dashboard and reporting routes
	admin.GET("/dashboard", controllers.HandleReportFunc(container, "getDashboard"))
	reportGroup := admin.Group("/reports")
	reportGroup.GET("", controllers.HandleReportFunc(container, "getMonitoringReport"))
	reportGroup.POST("", controllers.HandleReportFunc(container, "generateReport"))

	// Account settings routes
	accountGroup := admin.Group("/account")
	accountGroup.GET("", controllers.HandleAdminAccountFunc(container, "getProfile"))
	accountGroup.PUT("/username", controllers.HandleAdminAccountFunc(container, "updateUsername"))
	accountGroup.PUT("/password", controllers.HandleAdminAccountFunc(container, "updatePassword"))
	accountGroup.PUT("/profile", controllers.HandleAdminAccountFunc(container, "updateProfile"))
}

// registerTenantRoutes registers the tenant self-service surface
func registerTenantRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	tenant := api.Group("/tenant")
	tenant.Use(middleware.AuthenticateTenant())
	tenant.Use(middleware.RateLimitByIP(30, 50))

	tenant.GET("/dashboard", controllers.HandleTenantPortalFunc(container, "dashboard"))
	tenant.GET("/profile", controllers.HandleTenantPortalFunc(container, "getProfile"))
	tenant.PUT("/profile", controllers.HandleTenantPortalFunc(container, "updateProfile"))
	tenant.GET("/payments", controllers.HandleTenantPortalFunc(container, "getPayments"))
	tenant.GET("/requests", controllers.HandleTenantPortalFunc(container, "getRequests"))
	tenant.POST("/requests", controllers.HandleTenantPortalFunc(container, "fileRequest"))
}
