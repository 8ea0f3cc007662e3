package controllers

import (
	"net/http"

	"boardinghouse-http-service/internal/domain/services"
	"boardinghouse-http-service/internal/domain/services/container"
	"boardinghouse-http-service/internal/error/code"
	"boardinghouse-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceAdminAccountController defines the admin account controller interface
type InterfaceAdminAccountController interface {
	GetProfile()
	UpdateUsername()
	UpdatePassword()
	UpdateProfile()
}

// AdminAccountController handles the signed-in admin's own account
type AdminAccountController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminAccountController creates a new admin account controller
func NewAdminAccountController(ctx *gin.Context, container *container.ServiceContainer) *AdminAccountController {
	return &AdminAccountController{
		Ctx:       ctx,
		Container: container,
	}
}

// UsernameUpdateRequest represents a username change payload
type UsernameUpdateRequest struct {
	NewUsername string `json:"new_username" binding:"required" example:"admin2"`
}

// PasswordUpdateRequest represents a password change payload
type PasswordUpdateRequest struct {
	CurrentPassword string `json:"current_password" binding:"required" example:"admin123"`
	NewPassword     string `json:"new_password" binding:"required" example:"s3cret!"`
}

// ProfileUpdateRequest represents a profile change payload
type ProfileUpdateRequest struct {
	FullName string `json:"full_name" binding:"required" example:"Juan dela Cruz"`
	Email    string `json:"email" binding:"required,email" example:"admin@boardinghouse.ph"`
	Phone    string `json:"phone" example:"09181234567"`
}

// HandleAdminAccountFunc returns a gin handler dispatching account requests
func HandleAdminAccountFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminAccountController(ctx, container)

		switch method {
		case "getProfile":
			controller.GetProfile()
		case "updateUsername":
			controller.UpdateUsername()
		case "updatePassword":
			controller.UpdatePassword()
		case "updateProfile":
			controller.UpdateProfile()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "Invalid method",
				"data":    nil,
			})
		}
	}
}

// GetProfile returns the signed-in admin's profile
// @Summary      Admin profile
// @Description  Profile resolved by the signed-in username; a missing record yields a default-empty profile
// @Tags         AdminAccount
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.AdminAccount}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/account [get]
func (c *AdminAccountController) GetProfile() {
	accountService := c.Container.GetService("admin_account").(services.InterfaceAdminAccountService)

	admin, err := accountService.GetProfileByUsername(c.Ctx.GetString("username"))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, admin)
}

// UpdateUsername changes the signed-in admin's username
// @Summary      Update username
// @Description  Changes the signed-in admin's username; a blank value is a no-op
// @Tags         AdminAccount
// @Accept       json
// @Produce      json
// @Param        request body UsernameUpdateRequest true "New username"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/account/username [put]
func (c *AdminAccountController) UpdateUsername() {
	var req UsernameUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	accountService := c.Container.GetService("admin_account").(services.InterfaceAdminAccountService)
	if err := accountService.UpdateUsername(c.Ctx.GetString("username"), req.NewUsername); err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// UpdatePassword changes the signed-in admin's password
// @Summary      Update password
// @Description  Re-hashes the password after verifying the current one; validation failures are silent no-ops
// @Tags         AdminAccount
// @Accept       json
// @Produce      json
// @Param        request body PasswordUpdateRequest true "Current and new password"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/account/password [put]
func (c *AdminAccountController) UpdatePassword() {
	var req PasswordUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	accountService := c.Container.GetService("admin_account").(services.InterfaceAdminAccountService)
	if err := accountService.UpdatePassword(c.Ctx.GetString("username"), req.CurrentPassword, req.NewPassword); err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// UpdateProfile replaces the signed-in admin's profile fields
// @Summary      Update profile
// @Description  Replaces full name, email and phone by the signed-in username
// @Tags         AdminAccount
// @Accept       json
// @Produce      json
// @Param        request body ProfileUpdateRequest true "Profile fields"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/account/profile [put]
func (c *AdminAccountController) UpdateProfile() {
	var req ProfileUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	accountService := c.Container.GetService("admin_account").(services.InterfaceAdminAccountService)
	if err := accountService.UpdateProfile(c.Ctx.GetString("username"), req.FullName, req.Email, req.Phone); err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, nil)
}
