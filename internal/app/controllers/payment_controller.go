package controllers

import (
	"errors"
	"net/http"
	"time"

	"boardinghouse-http-service/internal/domain/models"
	"boardinghouse-http-service/internal/domain/services"
	"boardinghouse-http-service/internal/domain/services/container"
	"boardinghouse-http-service/internal/error/code"
	"boardinghouse-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfacePaymentController defines the payment controller interface
type InterfacePaymentController interface {
	GetPayments()
	RecordPayment()
}

// PaymentController handles payment processing requests
type PaymentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPaymentController creates a new payment controller
func NewPaymentController(ctx *gin.Context, container *container.ServiceContainer) *PaymentController {
	return &PaymentController{
		Ctx:       ctx,
		Container: container,
	}
}

// PaymentRequest represents a payment record payload
type PaymentRequest struct {
	TenantID      uint       `json:"tenant_id" binding:"required" example:"1"`
	RoomID        uint       `json:"room_id" example:"1"`
	Amount        float64    `json:"amount" example:"3500"`
	PaymentDate   *time.Time `json:"payment_date"`
	PaymentMethod string     `json:"payment_method" example:"Cash"`
	PaymentType   string     `json:"payment_type" example:"Monthly Rent"`
	Status        string     `json:"status" example:"Paid"`
}

// HandlePaymentFunc returns a gin handler dispatching payment requests
func HandlePaymentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPaymentController(ctx, container)

		switch method {
		case "getPayments":
			controller.GetPayments()
		case "recordPayment":
			controller.RecordPayment()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "Invalid method",
				"data":    nil,
			})
		}
	}
}

// GetPayments lists all payments
// @Summary      List payments
// @Description  All payments newest-first by payment date
// @Tags         Payment
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/payments [get]
func (c *PaymentController) GetPayments() {
	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)

	payments, err := paymentService.GetAllPayments()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, payments)
}

// RecordPayment records a payment
// @Summary      Record payment
// @Description  Records a payment; payment date defaults to now and status to Paid
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        request body PaymentRequest true "Payment fields"
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.Payment}
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/payments [post]
func (c *PaymentController) RecordPayment() {
	var req PaymentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	payment := &models.Payment{
		TenantID:      req.TenantID,
		RoomID:        req.RoomID,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
		PaymentType:   req.PaymentType,
		Status:        req.Status,
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	if err := paymentService.RecordPayment(payment); err != nil {
		if errors.Is(err, services.ErrNegativeAmount) {
			response.Fail(c.Ctx, code.ErrPaymentInvalidAmount, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, payment)
}
