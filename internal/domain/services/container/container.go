package container

import (
	"sync"

	"boardinghouse-http-service/internal/domain/services"
	"boardinghouse-http-service/internal/infrastructure/config"
	"boardinghouse-http-service/pkg/logger"

	"gorm.io/gorm"
)

// ServiceContainer wires all services together
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// Base services
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService
	authService  services.InterfaceAuthService

	// Domain services
	roomService         services.InterfaceRoomService
	tenantService       services.InterfaceTenantService
	paymentService      services.InterfacePaymentService
	requestService      services.InterfaceRequestService
	reportService       services.InterfaceReportService
	adminAccountService services.InterfaceAdminAccountService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("database handle is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices initializes all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Base services
	c.jwtService = services.NewJWTService(c.config)
	c.redisService = services.NewRedisService(c.config)
	c.authService = services.NewAuthService(c.db, c.config)

	// Session revocation degrades gracefully when Redis is down
	if err := c.redisService.Ping(); err != nil {
		logger.Warning("Redis connection test failed: %v, logout revocation and dashboard caching degraded", err)
	}

	// Domain services
	c.roomService = services.NewRoomService(c.db, c.config)
	c.tenantService = services.NewTenantService(c.db, c.config)
	c.paymentService = services.NewPaymentService(c.db, c.config)
	c.requestService = services.NewRequestService(c.db, c.config)
	c.reportService = services.NewReportService(c.db, c.config)
	c.adminAccountService = services.NewAdminAccountService(c.db, c.config)
}

// GetService returns the named service
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "auth":
		return c.authService
	case "room":
		return c.roomService
	case "tenant":
		return c.tenantService
	case "payment":
		return c.paymentService
	case "request":
		return c.requestService
	case "report":
		return c.reportService
	case "admin_account":
		return c.adminAccountService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	return c.db
}

// GetConfig returns the configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	return c.config
}
