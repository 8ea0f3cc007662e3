package controllers

import (
	"net/http"
	"time"

	"boardinghouse-http-service/internal/domain/models"
	"boardinghouse-http-service/internal/domain/services"
	"boardinghouse-http-service/internal/domain/services/container"
	"boardinghouse-http-service/internal/error/code"
	"boardinghouse-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceTenantController defines the tenant registration controller interface
type InterfaceTenantController interface {
	GetRegistration()
	RegisterTenant()
}

// TenantController handles admin-side tenant registration
type TenantController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTenantController creates a new tenant controller
func NewTenantController(ctx *gin.Context, container *container.ServiceContainer) *TenantController {
	return &TenantController{
		Ctx:       ctx,
		Container: container,
	}
}

// TenantRequest represents a tenant registration payload
type TenantRequest struct {
	FullName      string     `json:"full_name" binding:"required" example:"Maria Santos"`
	Gender        string     `json:"gender" example:"Female"`
	Age           int        `json:"age" example:"24"`
	Address       string     `json:"address" example:"Quezon City"`
	ContactNumber string     `json:"contact_number" example:"09171234567"`
	Status        string     `json:"status" example:"Active"`
	MoveInDate    *time.Time `json:"move_in_date"`
	RoomNumber    string     `json:"room_number" example:"101"`
	Username      string     `json:"username" binding:"required" example:"maria"`
	Password      string     `json:"password" binding:"required" example:"changeme"`
}

// RegistrationData bundles the tenant registration view data
type RegistrationData struct {
	AvailableRooms []models.Room   `json:"available_rooms"`
	Tenants        []models.Tenant `json:"tenants"`
}

// HandleTenantFunc returns a gin handler dispatching tenant registration requests
func HandleTenantFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTenantController(ctx, container)

		switch method {
		case "getRegistration":
			controller.GetRegistration()
		case "registerTenant":
			controller.RegisterTenant()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "Invalid method",
				"data":    nil,
			})
		}
	}
}

// GetRegistration returns the registration view data
// @Summary      Tenant registration data
// @Description  All tenants plus the rooms assignable at registration (Vacant only)
// @Tags         Tenant
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=RegistrationData}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/tenants [get]
func (c *TenantController) GetRegistration() {
	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)

	availableRooms, err := roomService.GetVacantRooms()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	tenants, err := tenantService.GetAllTenants()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, RegistrationData{
		AvailableRooms: availableRooms,
		Tenants:        tenants,
	})
}

// RegisterTenant creates a tenant, assigning the chosen room
// @Summary      Register tenant
// @Description  Creates a tenant; a resolvable room number assigns the room and flips it to Occupied, an unresolvable one leaves the tenant unassigned
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        request body TenantRequest true "Tenant fields"
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.Tenant}
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/tenants [post]
func (c *TenantController) RegisterTenant() {
	var req TenantRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	tenant := &models.Tenant{
		FullName:      req.FullName,
		Gender:        req.Gender,
		Age:           req.Age,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
		Status:        req.Status,
		MoveInDate:    req.MoveInDate,
		RoomNumber:    req.RoomNumber,
		Username:      req.Username,
		Password:      req.Password,
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	if err := tenantService.RegisterTenant(tenant); err != nil {
		if err.Error() == "tenant username already exists" {
			response.Fail(c.Ctx, code.ErrTenantAlreadyExist, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, tenant)
}
