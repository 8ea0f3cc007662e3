package controllers

import (
	"time"

	"boardinghouse-http-service/internal/domain/services"
	"boardinghouse-http-service/internal/domain/services/container"
	"boardinghouse-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// HealthController reports service liveness and dependency health
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a new health controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a gin handler dispatching health probes
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "health":
			controller.Health()
		default:
			controller.Ping()
		}
	}
}

// Ping answers a bare liveness probe
// @Summary      Ping
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{
		"message": "pong",
		"time":    time.Now().Format(time.RFC3339),
	})
}

// Health reports database and cache connectivity
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health [get]
func (c *HealthController) Health() {
	status := gin.H{
		"database": "ok",
		"redis":    "ok",
	}

	sqlDB, err := c.Container.GetDB().DB()
	if err != nil || sqlDB.Ping() != nil {
		status["database"] = "unreachable"
	}

	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	if err := redisService.Ping(); err != nil {
		status["redis"] = "unreachable"
	}

	response.Success(c.Ctx, status)
}
