package controllers

import (
	"net/http"

	"boardinghouse-http-service/internal/domain/models"
	"boardinghouse-http-service/internal/domain/services"
	"boardinghouse-http-service/internal/domain/services/container"
	"boardinghouse-http-service/internal/error/code"
	"boardinghouse-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceTenantPortalController defines the tenant portal controller interface
type InterfaceTenantPortalController interface {
	Dashboard()
	GetProfile()
	UpdateProfile()
	GetPayments()
	GetRequests()
	FileRequest()
}

// TenantPortalController handles the tenant self-service surface
type TenantPortalController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTenantPortalController creates a new tenant portal controller
func NewTenantPortalController(ctx *gin.Context, container *container.ServiceContainer) *TenantPortalController {
	return &TenantPortalController{
		Ctx:       ctx,
		Container: container,
	}
}

// TenantDashboardData bundles the tenant dashboard view data. Room is
// nil for an unassigned tenant.
type TenantDashboardData struct {
	Tenant *models.Tenant `json:"tenant"`
	Room   *models.Room   `json:"room"`
}

// FileRequestRequest represents a new maintenance request payload.
// Tenant and room identity are stamped server-side, never taken from
// the client.
type FileRequestRequest struct {
	Title       string `json:"title" binding:"required" example:"Leaking faucet"`
	Description string `json:"description" example:"Kitchen faucet drips overnight"`
	Category    string `json:"category" example:"Maintenance"`
}

// HandleTenantPortalFunc returns a gin handler dispatching portal requests
func HandleTenantPortalFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTenantPortalController(ctx, container)

		switch method {
		case "dashboard":
			controller.Dashboard()
		case "getProfile":
			controller.GetProfile()
		case "updateProfile":
			controller.UpdateProfile()
		case "getPayments":
			controller.GetPayments()
		case "getRequests":
			controller.GetRequests()
		case "fileRequest":
			controller.FileRequest()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "Invalid method",
				"data":    nil,
			})
		}
	}
}

// currentTenant resolves the signed-in tenant, responding on failure
func (c *TenantPortalController) currentTenant() (*models.Tenant, bool) {
	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)

	tenant, err := tenantService.GetTenantByUsername(c.Ctx.GetString("username"))
	if err != nil {
		response.Fail(c.Ctx, code.ErrTenantNotFound, nil)
		return nil, false
	}
	return tenant, true
}

// Dashboard returns the signed-in tenant and their room
// @Summary      Tenant dashboard
// @Description  The signed-in tenant plus their room; the room panel is null for an unassigned tenant
// @Tags         TenantPortal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=TenantDashboardData}
// @Failure      404  {object}  ErrorResponse
// @Router       /tenant/dashboard [get]
func (c *TenantPortalController) Dashboard() {
	tenant, ok := c.currentTenant()
	if !ok {
		return
	}

	var room *models.Room
	if tenant.RoomID != nil {
		roomService := c.Container.GetService("room").(services.InterfaceRoomService)
		if r, err := roomService.GetRoomByID(*tenant.RoomID); err == nil {
			room = r
		}
	}

	response.Success(c.Ctx, TenantDashboardData{
		Tenant: tenant,
		Room:   room,
	})
}

// GetProfile returns the signed-in tenant's profile
// @Summary      Tenant profile
// @Tags         TenantPortal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.Tenant}
// @Failure      404  {object}  ErrorResponse
// @Router       /tenant/profile [get]
func (c *TenantPortalController) GetProfile() {
	tenant, ok := c.currentTenant()
	if !ok {
		return
	}

	response.Success(c.Ctx, tenant)
}

// UpdateProfile updates the signed-in tenant's editable fields
// @Summary      Update tenant profile
// @Description  Only full name, gender, age, address and contact number are editable here; room, status and credentials are not
// @Tags         TenantPortal
// @Accept       json
// @Produce      json
// @Param        request body services.TenantProfileUpdate true "Profile fields"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /tenant/profile [put]
func (c *TenantPortalController) UpdateProfile() {
	var req services.TenantProfileUpdate
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	if err := tenantService.UpdateProfile(c.Ctx.GetString("username"), req); err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// GetPayments lists the signed-in tenant's payments
// @Summary      Tenant payment history
// @Description  Only the signed-in tenant's payments, newest-first
// @Tags         TenantPortal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /tenant/payments [get]
func (c *TenantPortalController) GetPayments() {
	tenant, ok := c.currentTenant()
	if !ok {
		return
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payments, err := paymentService.GetPaymentsByTenant(tenant.ID)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, payments)
}

// GetRequests lists the signed-in tenant's requests
// @Summary      Tenant requests
// @Description  Only the signed-in tenant's requests, newest-first
// @Tags         TenantPortal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /tenant/requests [get]
func (c *TenantPortalController) GetRequests() {
	tenant, ok := c.currentTenant()
	if !ok {
		return
	}

	requestService := c.Container.GetService("request").(services.InterfaceRequestService)
	requests, err := requestService.GetRequestsByTenant(tenant.ID)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, requests)
}

// FileRequest files a new maintenance request for the signed-in tenant
// @Summary      File request
// @Description  Tenant and room identity come from the authenticated record, status is forced to Pending and the filing date stamped server-side
// @Tags         TenantPortal
// @Accept       json
// @Produce      json
// @Param        request body FileRequestRequest true "Request fields"
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.Request}
// @Failure      400  {object}  ErrorResponse
// @Router       /tenant/requests [post]
func (c *TenantPortalController) FileRequest() {
	tenant, ok := c.currentTenant()
	if !ok {
		return
	}

	var req FileRequestRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	requestService := c.Container.GetService("request").(services.InterfaceRequestService)
	request, err := requestService.FileRequest(tenant, req.Title, req.Description, req.Category)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, request)
}
