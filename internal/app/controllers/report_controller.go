package controllers

import (
	"net/http"
	"time"

	"boardinghouse-http-service/internal/domain/models"
	"boardinghouse-http-service/internal/domain/services"
	"boardinghouse-http-service/internal/domain/services/container"
	"boardinghouse-http-service/internal/error/code"
	"boardinghouse-http-service/internal/error/response"
	"boardinghouse-http-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Dashboard summaries change slowly enough to cache briefly
const dashboardCacheTTL = 30 * time.Second

// InterfaceReportController defines the report controller interface
type InterfaceReportController interface {
	GetDashboard()
	GetMonitoringReport()
	GenerateReport()
}

// ReportController handles dashboard and report requests
type ReportController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewReportController creates a new report controller
func NewReportController(ctx *gin.Context, container *container.ServiceContainer) *ReportController {
	return &ReportController{
		Ctx:       ctx,
		Container: container,
	}
}

// ReportRequest represents a generate-report payload
type ReportRequest struct {
	ReportType  string `json:"report_type" binding:"required" example:"MonthlyIncome"`
	Title       string `json:"title" binding:"required" example:"September income"`
	Description string `json:"description" example:"Income summary for September"`
}

// HandleReportFunc returns a gin handler dispatching report requests
func HandleReportFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewReportController(ctx, container)

		switch method {
		case "getDashboard":
			controller.GetDashboard()
		case "getMonitoringReport":
			controller.GetMonitoringReport()
		case "generateReport":
			controller.GenerateReport()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "Invalid method",
				"data":    nil,
			})
		}
	}
}

// GetDashboard returns the admin dashboard summary
// @Summary      Admin dashboard
// @Description  Aggregate counts plus the ten most recent payments; served from a short-lived cache when available
// @Tags         Report
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=services.DashboardSummary}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/dashboard [get]
func (c *ReportController) GetDashboard() {
	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)

	var cached services.DashboardSummary
	if err := redisService.GetDashboard(&cached); err == nil {
		response.Success(c.Ctx, cached)
		return
	}

	summary, err := reportService.GetDashboardSummary()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	if err := redisService.CacheDashboard(summary, dashboardCacheTTL); err != nil {
		logger.Warning("Failed to cache dashboard summary: %v", err)
	}

	response.Success(c.Ctx, summary)
}

// GetMonitoringReport returns the reports page aggregates
// @Summary      Reports and monitoring
// @Description  Room/request/payment counts, current-month income and the generated report list; recomputed on every view
// @Tags         Report
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=services.MonitoringReport}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/reports [get]
func (c *ReportController) GetMonitoringReport() {
	reportService := c.Container.GetService("report").(services.InterfaceReportService)

	report, err := reportService.GetMonitoringReport()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, report)
}

// GenerateReport appends a report entry
// @Summary      Generate report
// @Description  Appends a report entry; reports are never updated or deleted
// @Tags         Report
// @Accept       json
// @Produce      json
// @Param        request body ReportRequest true "Report fields"
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.Report}
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/reports [post]
func (c *ReportController) GenerateReport() {
	var req ReportRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	report := &models.Report{
		ReportType:  req.ReportType,
		Title:       req.Title,
		Description: req.Description,
	}

	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	if err := reportService.GenerateReport(report); err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, report)
}
