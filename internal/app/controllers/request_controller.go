package controllers

import (
	"net/http"
	"strconv"

	"boardinghouse-http-service/internal/domain/services"
	"boardinghouse-http-service/internal/domain/services/container"
	"boardinghouse-http-service/internal/error/code"
	"boardinghouse-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceRequestController defines the request controller interface
type InterfaceRequestController interface {
	GetRequests()
	UpdateRequest()
}

// RequestController handles admin-side request handling
type RequestController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRequestController creates a new request controller
func NewRequestController(ctx *gin.Context, container *container.ServiceContainer) *RequestController {
	return &RequestController{
		Ctx:       ctx,
		Container: container,
	}
}

// RequestUpdateRequest carries the only admin-mutable request fields
type RequestUpdateRequest struct {
	Status string `json:"status" binding:"required" example:"In Progress"`
	Notes  string `json:"notes" example:"Plumber scheduled for Tuesday"`
}

// HandleRequestFunc returns a gin handler dispatching request-handling requests
func HandleRequestFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRequestController(ctx, container)

		switch method {
		case "getRequests":
			controller.GetRequests()
		case "updateRequest":
			controller.UpdateRequest()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "Invalid method",
				"data":    nil,
			})
		}
	}
}

// GetRequests lists all requests
// @Summary      List requests
// @Description  All requests newest-first by filing date
// @Tags         Request
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/requests [get]
func (c *RequestController) GetRequests() {
	requestService := c.Container.GetService("request").(services.InterfaceRequestService)

	requests, err := requestService.GetAllRequests()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, requests)
}

// UpdateRequest updates a request's status and notes
// @Summary      Update request
// @Description  Sets status and notes only; an invalid or unknown id degrades to returning the refreshed list
// @Tags         Request
// @Accept       json
// @Produce      json
// @Param        id path int true "Request ID"
// @Param        request body RequestUpdateRequest true "Status and notes"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/requests/{id} [put]
func (c *RequestController) UpdateRequest() {
	requestService := c.Container.GetService("request").(services.InterfaceRequestService)

	// A bad id or payload degrades to a no-op, the caller gets the
	// refreshed list either way
	var req RequestUpdateRequest
	id, idErr := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	bindErr := c.Ctx.ShouldBindJSON(&req)

	if idErr == nil && bindErr == nil {
		if err := requestService.UpdateRequest(uint(id), req.Status, req.Notes); err != nil {
			response.Fail(c.Ctx, code.ErrDatabase, nil)
			return
		}
	}

	requests, err := requestService.GetAllRequests()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, requests)
}
